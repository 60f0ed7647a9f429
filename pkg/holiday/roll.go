package holiday

import (
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

// Nominals holds the nominal date of every holiday observed in the year
// being rolled, keyed by holiday name. It is read-only.
type Nominals struct {
	dates map[string]time.Time
}

// NewNominals copies dates into a read-only Nominals
func NewNominals(dates map[string]time.Time) Nominals {
	n := Nominals{dates: make(map[string]time.Time, len(dates))}
	for name, d := range dates {
		n.dates[name] = dateutil.DateOf(d)
	}
	return n
}

// Date returns the nominal date of the named holiday
func (n Nominals) Date(name string) (time.Time, bool) {
	d, ok := n.dates[name]
	return d, ok
}

// Is reports whether the named holiday nominally falls on date
func (n Nominals) Is(name string, date time.Time) bool {
	d, ok := n.dates[name]
	return ok && d.Equal(dateutil.DateOf(date))
}

func (n Nominals) Len() int { return len(n.dates) }

// RollContext is what a DateRoll may consult besides the date itself
type RollContext struct {
	// Holiday being rolled
	Holiday Holiday
	// Nominals of every holiday observed in the same year
	Nominals Nominals
	// Weekend of the calendar doing the roll
	Weekend Weekdays
}

func (rc RollContext) isWeekend(date time.Time) bool {
	if rc.Weekend.Len() == 0 {
		return dateutil.IsWeekend(date)
	}
	return rc.Weekend.Contains(date.Weekday())
}

// DateRoll moves a nominal date that falls on a weekend to the date the
// holiday is actually observed. Calendars only invoke it for weekend dates.
type DateRoll interface {
	RollToObservedDate(date time.Time, rc RollContext) time.Time
}

// RollFunc adapts a function to a DateRoll
type RollFunc func(date time.Time, rc RollContext) time.Time

func (f RollFunc) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	return f(date, rc)
}

// None leaves every date where it is
type None struct{}

func (None) RollToObservedDate(date time.Time, _ RollContext) time.Time { return date }

// NearestWeekday observes a Saturday holiday on the Friday before and a
// Sunday holiday on the Monday after.
type NearestWeekday struct{}

func (NearestWeekday) RollToObservedDate(date time.Time, _ RollContext) time.Time {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, -1)
	case time.Sunday:
		return date.AddDate(0, 0, 1)
	}
	return date
}

// FollowingWeekday observes a weekend holiday on the next day outside the
// weekend.
type FollowingWeekday struct{}

func (FollowingWeekday) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	return nextBusinessDay(date, rc)
}

// nextBusinessDay returns date if it is a business day, else the first one after it
func nextBusinessDay(date time.Time, rc RollContext) time.Time {
	for i := 0; i < 7 && rc.isWeekend(date); i++ {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

// ProtectedSunday moves a Sunday forward by Days (default 1) only when one
// of the named holidays nominally falls on it. Every other date is left alone.
type ProtectedSunday struct {
	Names []string
	Days  int
}

func (p ProtectedSunday) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	if date.Weekday() != time.Sunday {
		return date
	}
	for _, name := range p.Names {
		if rc.Nominals.Is(name, date) {
			days := p.Days
			if days == 0 {
				days = 1
			}
			return date.AddDate(0, 0, days)
		}
	}
	return date
}

// Block rolls a run of adjacent holidays, such as Christmas and Boxing Day,
// so that none of them is observed on the same day. A member on a weekend
// moves to the first business day after it that no other member occupies;
// earlier members in Names are placed first. Holidays outside the block are
// handed to Else, or left alone when Else is nil.
type Block struct {
	Names []string
	Else  DateRoll
}

func (b Block) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	idx := b.index(rc.Holiday.Name())
	if idx < 0 {
		if b.Else == nil {
			return date
		}
		return b.Else.RollToObservedDate(date, rc)
	}
	return b.place(idx, date, rc)
}

func (b Block) index(name string) int {
	for i, n := range b.Names {
		if n == name {
			return i
		}
	}
	return -1
}

// place finds the observed date of member idx whose nominal date is date
func (b Block) place(idx int, date time.Time, rc RollContext) time.Time {
	if !rc.isWeekend(date) {
		return date
	}

	taken := make(map[time.Time]bool, len(b.Names))
	for i, name := range b.Names {
		if i == idx {
			continue
		}
		nominal, ok := rc.Nominals.Date(name)
		if !ok {
			continue
		}
		switch {
		case i < idx:
			taken[b.place(i, nominal, rc)] = true
		case !rc.isWeekend(nominal):
			taken[nominal] = true
		}
	}

	candidate := date
	for i := 0; i < 14; i++ {
		candidate = nextBusinessDay(candidate.AddDate(0, 0, 1), rc)
		if !taken[candidate] {
			return candidate
		}
	}
	return candidate
}

// HonorRollable skips Roll for holidays whose rollable flag is false
type HonorRollable struct {
	Roll DateRoll
}

func (h HonorRollable) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	if !rc.Holiday.Rollable() || h.Roll == nil {
		return date
	}
	return h.Roll.RollToObservedDate(date, rc)
}

// Chain applies rolls in order, each to the previous result. Nil entries
// are skipped.
func Chain(rolls ...DateRoll) DateRoll {
	var kept []DateRoll
	for _, r := range rolls {
		if r != nil {
			kept = append(kept, r)
		}
	}
	switch len(kept) {
	case 0:
		return None{}
	case 1:
		return kept[0]
	}
	return chain(kept)
}

type chain []DateRoll

func (c chain) RollToObservedDate(date time.Time, rc RollContext) time.Time {
	for _, r := range c {
		date = r.RollToObservedDate(date, rc)
	}
	return date
}
