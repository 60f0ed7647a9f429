package observance

import (
	"fmt"
	"time"

	"github.com/username/holiday-calendar/pkg/easter"
)

// MinAscensionOffset is the canonical distance of Ascension Day from Easter Sunday
const MinAscensionOffset = 39

func EasterSunday(r easter.Reckoning) Observance { return Easter{Reckoning: r} }

func AshWednesday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: -46} }

func PalmSunday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: -7} }

func GoodFriday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: -2} }

func EasterMonday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: 1} }

// AscensionDay is 39 days after Easter. Some churches move it later; days
// may be larger but never smaller than MinAscensionOffset.
func AscensionDay(r easter.Reckoning, days int) (Observance, error) {
	if days < MinAscensionOffset {
		return nil, fmt.Errorf("%w: ascension must be at least %d days after easter, got %d",
			ErrInvalidRule, MinAscensionOffset, days)
	}
	return EasterOffset{Reckoning: r, Days: days}, nil
}

// WhitSunday (Pentecost) is seven weeks after Easter
func WhitSunday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: 49} }

func WhitMonday(r easter.Reckoning) Observance { return EasterOffset{Reckoning: r, Days: 50} }

// CorpusChristi is the Thursday 60 days after Easter, or the Sunday after
// it where the feast is transferred.
func CorpusChristi(r easter.Reckoning, onSunday bool) Observance {
	return EasterOffset{Reckoning: r, Days: 60, SnapToSunday: onSunday}
}

// MayDay is May 1, or the first Monday of May where it is kept as a long weekend
func MayDay(onFirstMonday bool) Observance {
	if onFirstMonday {
		return FirstWeekdayOf(time.May, time.Monday)
	}
	return Fixed{Month: time.May, Day: 1}
}

// EuropeDay has been kept since 1964; May 9 by the European Union and
// May 5 by the Council of Europe.
func EuropeDay(europeanUnion bool) Observance {
	day := 5
	if europeanUnion {
		day = 9
	}
	return Since{Year: 1964, Rule: Fixed{Month: time.May, Day: day}}
}
