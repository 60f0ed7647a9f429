package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a year, month and day do not name a real calendar date
var ErrInvalidDate = errors.New("invalid calendar date")

// Date returns midnight UTC of the given day. Out of range values are
// normalized the same way time.Date does; use NewDate to reject them.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewDate returns midnight UTC of the given day or ErrInvalidDate
func NewDate(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return Date(year, month, day), nil
}

// DateOf strips the time of day and location, keeping the calendar day as seen in t's location
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the month
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

// NthWeekday returns the nth occurrence (1-based) of weekday in the month.
// ok is false if the month has fewer than n such weekdays.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (date time.Time, ok bool) {
	if n < 1 {
		return time.Time{}, false
	}
	first := Date(year, month, 1)
	delta := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + delta + (n-1)*7
	if day > DaysIn(year, month) {
		return time.Time{}, false
	}
	return Date(year, month, day), true
}

// FirstWeekday returns the first occurrence of weekday in the month
func FirstWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	date, _ := NthWeekday(year, month, weekday, 1)
	return date
}

// LastWeekday returns the last occurrence of weekday in the month
func LastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := Date(year, month, DaysIn(year, month))
	delta := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -delta)
}

// WeekdayBefore returns the last occurrence of weekday strictly before the given day
func WeekdayBefore(year int, month time.Month, day int, weekday time.Weekday) time.Time {
	ref := Date(year, month, day)
	delta := (int(ref.Weekday()) - int(weekday) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, -delta)
}

// NextWeekday returns the first occurrence of weekday on or after date
func NextWeekday(date time.Time, weekday time.Weekday) time.Time {
	delta := (int(weekday) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, delta)
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return DateOf(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognized date %q", ErrInvalidDate, dateStr)
}

// ParseMonthDay parses "--MM-DD" (ISO 8601) or "MM-DD". Feb 29 is accepted.
func ParseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "--"), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: month-day %q, expected --MM-DD", ErrInvalidDate, s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: month in %q", ErrInvalidDate, s)
	}
	d, err := strconv.Atoi(parts[1])
	// leap year so Feb 29 is representable
	if err != nil || d < 1 || d > DaysIn(2000, time.Month(m)) {
		return 0, 0, fmt.Errorf("%w: day in %q", ErrInvalidDate, s)
	}
	return time.Month(m), d, nil
}

// ParseWeekday parses an English weekday name or its three letter prefix, in any case
func ParseWeekday(s string) (time.Weekday, error) {
	lc := strings.ToLower(strings.TrimSpace(s))
	if len(lc) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), lc) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", s)
}
