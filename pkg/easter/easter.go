// Package easter computes the date of Easter Sunday under the Western
// (Gregorian) and Orthodox (Julian) reckonings. Every function here is pure
// and uses integer arithmetic only.
package easter

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
)

const (
	// MinYear is the first year either computus is defined for
	MinYear = 530
	// MaxOrthodoxYear is the last year the Julian to Gregorian offset table covers
	MaxOrthodoxYear = 3399
	// GregorianReformYear is the first full year of Gregorian reckoning
	GregorianReformYear = 1583
)

// Reckoning selects the ecclesiastical calendar used to compute Easter
type Reckoning int

const (
	Western Reckoning = iota + 1
	Orthodox
)

func (r Reckoning) String() string {
	switch r {
	case Western:
		return "western"
	case Orthodox:
		return "orthodox"
	}
	return fmt.Sprintf("Reckoning(%d)", int(r))
}

// ParseReckoning parses "western"/"gregorian" or "orthodox"/"julian"
func ParseReckoning(s string) (Reckoning, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "western", "gregorian":
		return Western, nil
	case "orthodox", "julian", "eastern":
		return Orthodox, nil
	}
	return 0, fmt.Errorf("unsupported easter reckoning: %q", s)
}

// Valid reports whether year is inside the range the reckoning is defined for
func (r Reckoning) Valid(year int) bool {
	switch r {
	case Western:
		return year >= MinYear
	case Orthodox:
		return year >= MinYear && year <= MaxOrthodoxYear
	}
	return false
}

// Sunday returns Easter Sunday for year under the reckoning
func Sunday(r Reckoning, year int) (time.Time, bool) {
	switch r {
	case Western:
		return WesternSunday(year)
	case Orthodox:
		return OrthodoxSunday(year)
	}
	return time.Time{}, false
}

// julianOffsets maps year ranges to the number of days the Julian calendar
// lags the Gregorian one. Years outside every range get no adjustment.
var julianOffsets = []struct {
	from, to, days int
}{
	{1583, 1699, 10},
	{1700, 1799, 11},
	{1800, 1899, 12},
	{1900, 2099, 13},
	{2100, 2199, 14},
	{2200, 2299, 15},
	{2300, 2499, 16},
	{2500, 2599, 17},
	{2600, 2699, 18},
	{2700, 2899, 19},
	{2900, 2999, 20},
	{3000, 3099, 21},
	{3100, 3299, 22},
	{3300, 3399, 23},
}

func julianOffset(year int) int {
	for _, row := range julianOffsets {
		if year < row.from {
			break
		}
		if year <= row.to {
			return row.days
		}
	}
	return 0
}

// OrthodoxSunday runs the Gauss algorithm on the Julian calendar and shifts
// the result onto the Gregorian calendar. Before 1583 the Julian date is
// returned unadjusted.
func OrthodoxSunday(year int) (time.Time, bool) {
	if !Orthodox.Valid(year) {
		return time.Time{}, false
	}
	a := year % 19
	b := year % 4
	c := year % 7
	d := (19*a + 16) % 30
	e := (2*b + 4*c + 6*d) % 7

	month, day := time.March, d+e+21
	if day > 31 {
		month, day = time.April, day-31
	}
	return dateutil.Date(year, month, day).AddDate(0, 0, julianOffset(year)), true
}

// WesternSunday runs the Meeus/Jones/Butcher algorithm. Years before the
// Gregorian reform share the Julian computation with OrthodoxSunday.
func WesternSunday(year int) (time.Time, bool) {
	if !Western.Valid(year) {
		return time.Time{}, false
	}
	if year < GregorianReformYear {
		return OrthodoxSunday(year)
	}
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := h + l - 7*m + 114
	return dateutil.Date(year, time.Month(n/31), n%31+1), true
}
