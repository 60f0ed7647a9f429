// Package holiday models holidays, the strategies that roll them off
// weekends, and the calendars that aggregate both into observed dates.
package holiday

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/observance"
)

// Kind discriminates how a holiday derives its nominal date
type Kind int

const (
	KindFixed Kind = iota + 1
	KindFloating
	KindSpecialAnniversary
)

// String returns the configuration name of the kind
func (k Kind) String() string {
	switch k {
	case KindFixed:
		return "fixed"
	case KindFloating:
		return "floating"
	case KindSpecialAnniversary:
		return "special_anniversary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses fixed, floating or special_anniversary. Dashes and case
// are ignored.
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "fixed":
		return KindFixed, nil
	case "floating":
		return KindFloating, nil
	case "special_anniversary", "anniversary":
		return KindSpecialAnniversary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Holiday is an immutable named rule producing at most one nominal date per
// year. The zero value is not a valid holiday; use the constructors.
type Holiday struct {
	name        string
	description string
	rollable    bool
	kind        Kind

	// KindFixed
	month time.Month
	day   int

	// KindFloating
	observance observance.Observance

	// KindSpecialAnniversary
	anniversary time.Time
}

// NewFixed creates a holiday on the same month and day every year. Feb 29
// is rejected since the holiday would vanish three years in four. Fixed
// holidays are rollable by default.
func NewFixed(name, description string, month time.Month, day int) (Holiday, error) {
	if err := checkName(name); err != nil {
		return Holiday{}, err
	}
	// 2001 is not a leap year, so Feb 29 fails here
	if _, err := dateutil.NewDate(2001, month, day); err != nil {
		return Holiday{}, fmt.Errorf("%w: %s: month %d day %d", ErrInvalidMonthDay, name, month, day)
	}
	return Holiday{
		name:        name,
		description: description,
		rollable:    true,
		kind:        KindFixed,
		month:       month,
		day:         day,
	}, nil
}

// NewFloating creates a holiday whose date is computed by an observance.
// Floating holidays are rollable by default.
func NewFloating(name, description string, obs observance.Observance) (Holiday, error) {
	if err := checkName(name); err != nil {
		return Holiday{}, err
	}
	if obs == nil {
		return Holiday{}, fmt.Errorf("%w: %s", ErrMissingObservance, name)
	}
	return Holiday{
		name:        name,
		description: description,
		rollable:    true,
		kind:        KindFloating,
		observance:  obs,
	}, nil
}

// NewSpecialAnniversary creates a one-off holiday observed only on date.
// Anniversaries are not rollable by default.
func NewSpecialAnniversary(name, description string, date time.Time) (Holiday, error) {
	if err := checkName(name); err != nil {
		return Holiday{}, err
	}
	if date.IsZero() {
		return Holiday{}, fmt.Errorf("%w: %s", ErrMissingAnniversary, name)
	}
	return Holiday{
		name:        name,
		description: description,
		kind:        KindSpecialAnniversary,
		anniversary: dateutil.DateOf(date),
	}, nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// WithRollable returns a copy of h with the rollable flag set
func (h Holiday) WithRollable(rollable bool) Holiday {
	h.rollable = rollable
	return h
}

func (h Holiday) Name() string        { return h.name }
func (h Holiday) Description() string { return h.description }
func (h Holiday) Rollable() bool      { return h.rollable }
func (h Holiday) Kind() Kind          { return h.kind }

// MonthDay returns the fixed month and day; ok is false for other kinds
func (h Holiday) MonthDay() (month time.Month, day int, ok bool) {
	return h.month, h.day, h.kind == KindFixed
}

// Observance returns the rule of a floating holiday, nil for other kinds
func (h Holiday) Observance() observance.Observance {
	return h.observance
}

// Anniversary returns the date of a special anniversary; ok is false for other kinds
func (h Holiday) Anniversary() (time.Time, bool) {
	return h.anniversary, h.kind == KindSpecialAnniversary
}

// DateForYear returns the nominal date of the holiday in year, before any
// roll. The second result is false when the holiday does not occur that year.
func (h Holiday) DateForYear(year int) (time.Time, bool) {
	switch h.kind {
	case KindFixed:
		return dateutil.Date(year, h.month, h.day), true
	case KindFloating:
		if !h.observance.Test(year) {
			return time.Time{}, false
		}
		return h.observance.Apply(year)
	case KindSpecialAnniversary:
		if h.anniversary.Year() != year {
			return time.Time{}, false
		}
		return h.anniversary, true
	}
	return time.Time{}, false
}

// Equal reports whether both holidays have the same name, description and
// date rule. The rollable flag is not compared.
func (h Holiday) Equal(other Holiday) bool {
	if h.name != other.name || h.description != other.description || h.kind != other.kind {
		return false
	}
	switch h.kind {
	case KindFixed:
		return h.month == other.month && h.day == other.day
	case KindFloating:
		return sameObservance(h.observance, other.observance)
	case KindSpecialAnniversary:
		return h.anniversary.Equal(other.anniversary)
	}
	return true
}

// sameObservance compares rules structurally. Func values are only equal to
// the same function.
func sameObservance(a, b observance.Observance) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

func (h Holiday) String() string {
	switch h.kind {
	case KindFixed:
		return fmt.Sprintf("%s (fixed %s %d)", h.name, h.month, h.day)
	case KindSpecialAnniversary:
		return fmt.Sprintf("%s (anniversary %s)", h.name, h.anniversary.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%s (%s)", h.name, h.kind)
	}
}
