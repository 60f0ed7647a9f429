// Package observance provides rules that map a year to the date, if any, on
// which a floating holiday falls.
//
// Every implementation honours one invariant: when Test(year) is false,
// Apply(year) reports no result. Callers may rely on either method.
package observance

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/easter"
)

// ErrInvalidRule is returned when an observance is constructed with parameters
// that can never produce a date
var ErrInvalidRule = errors.New("invalid observance rule")

// Observance computes the date of a holiday for a year
type Observance interface {
	// Apply returns the date for year, or false if the rule yields nothing that year
	Apply(year int) (time.Time, bool)

	// Test reports whether the rule applies to year at all
	Test(year int) bool
}

// Func adapts a plain function to an Observance that applies to every year
type Func func(year int) (time.Time, bool)

func (f Func) Apply(year int) (time.Time, bool) { return f(year) }

func (f Func) Test(int) bool { return true }

// Fixed falls on the same month and day every year. It is not observed in
// years where that day does not exist (Feb 29 outside leap years).
type Fixed struct {
	Month time.Month
	Day   int
}

func (f Fixed) Apply(year int) (time.Time, bool) {
	if !f.Test(year) {
		return time.Time{}, false
	}
	return dateutil.Date(year, f.Month, f.Day), true
}

func (f Fixed) Test(year int) bool {
	_, err := dateutil.NewDate(year, f.Month, f.Day)
	return err == nil
}

// NthWeekday is the Nth occurrence of a weekday in a month. N of -1 selects
// the last occurrence.
type NthWeekday struct {
	Month   time.Month
	Weekday time.Weekday
	N       int
}

// NewNthWeekday validates the rule. N must be 1..5 or -1 (last).
func NewNthWeekday(month time.Month, weekday time.Weekday, n int) (NthWeekday, error) {
	if month < time.January || month > time.December {
		return NthWeekday{}, fmt.Errorf("%w: month %d", ErrInvalidRule, month)
	}
	if weekday < time.Sunday || weekday > time.Saturday {
		return NthWeekday{}, fmt.Errorf("%w: weekday %d", ErrInvalidRule, weekday)
	}
	if n == 0 || n < -1 || n > 5 {
		return NthWeekday{}, fmt.Errorf("%w: occurrence %d, want 1..5 or -1", ErrInvalidRule, n)
	}
	return NthWeekday{Month: month, Weekday: weekday, N: n}, nil
}

// FirstWeekdayOf is the first given weekday of the month
func FirstWeekdayOf(month time.Month, weekday time.Weekday) NthWeekday {
	return NthWeekday{Month: month, Weekday: weekday, N: 1}
}

// LastWeekdayOf is the last given weekday of the month
func LastWeekdayOf(month time.Month, weekday time.Weekday) NthWeekday {
	return NthWeekday{Month: month, Weekday: weekday, N: -1}
}

func (o NthWeekday) Apply(year int) (time.Time, bool) {
	if o.N == -1 {
		return dateutil.LastWeekday(year, o.Month, o.Weekday), true
	}
	return dateutil.NthWeekday(year, o.Month, o.Weekday, o.N)
}

// Test is false only for a fifth occurrence in a month that has four
func (o NthWeekday) Test(year int) bool {
	_, ok := o.Apply(year)
	return ok
}

// WeekdayBefore is the last given weekday strictly before Month/Day, e.g.
// the Monday preceding May 25.
type WeekdayBefore struct {
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

func (o WeekdayBefore) Apply(year int) (time.Time, bool) {
	return dateutil.WeekdayBefore(year, o.Month, o.Day, o.Weekday), true
}

func (o WeekdayBefore) Test(int) bool { return true }

// Easter is Easter Sunday itself
type Easter struct {
	Reckoning easter.Reckoning
}

func (o Easter) Apply(year int) (time.Time, bool) {
	return easter.Sunday(o.Reckoning, year)
}

func (o Easter) Test(year int) bool {
	return o.Reckoning.Valid(year)
}

// EasterOffset is a fixed number of days from Easter Sunday. With
// SnapToSunday the result is moved forward to the next Sunday for feasts
// celebrated on the following Sunday.
type EasterOffset struct {
	Reckoning    easter.Reckoning
	Days         int
	SnapToSunday bool
}

func (o EasterOffset) Apply(year int) (time.Time, bool) {
	sunday, ok := easter.Sunday(o.Reckoning, year)
	if !ok {
		return time.Time{}, false
	}
	date := sunday.AddDate(0, 0, o.Days)
	if o.SnapToSunday {
		date = dateutil.NextWeekday(date, time.Sunday)
	}
	return date, true
}

func (o EasterOffset) Test(year int) bool {
	return o.Reckoning.Valid(year)
}

// Since gates a rule so that it only applies from Year onward
type Since struct {
	Year int
	Rule Observance
}

func (o Since) Apply(year int) (time.Time, bool) {
	if !o.Test(year) {
		return time.Time{}, false
	}
	return o.Rule.Apply(year)
}

func (o Since) Test(year int) bool {
	return year >= o.Year && o.Rule.Test(year)
}

// Cutover models a statute that redefined a holiday: Before applies to years
// prior to Year, After from Year onward.
type Cutover struct {
	Year   int
	Before Observance
	After  Observance
}

func (o Cutover) active(year int) Observance {
	if year < o.Year {
		return o.Before
	}
	return o.After
}

func (o Cutover) Apply(year int) (time.Time, bool) {
	rule := o.active(year)
	if !rule.Test(year) {
		return time.Time{}, false
	}
	return rule.Apply(year)
}

func (o Cutover) Test(year int) bool {
	return o.active(year).Test(year)
}

// Overrides replaces the date produced by Rule in specific years, e.g. a bank
// holiday moved for a jubilee. Years the rule does not apply to stay
// unobserved.
type Overrides struct {
	Dates map[int]time.Time
	Rule  Observance
}

func (o Overrides) Apply(year int) (time.Time, bool) {
	if !o.Test(year) {
		return time.Time{}, false
	}
	if date, ok := o.Dates[year]; ok {
		return dateutil.DateOf(date), true
	}
	return o.Rule.Apply(year)
}

func (o Overrides) Test(year int) bool {
	return o.Rule.Test(year)
}
