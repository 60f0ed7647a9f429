package holiday

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Config is the construction input of a Calendar
type Config struct {
	Code string
	Name string

	// DateRoll defaults to None
	DateRoll DateRoll

	// Weekend defaults to Saturday and Sunday when empty
	Weekend []time.Weekday

	// Holidays are keyed by name; the first holiday with a given name wins
	Holidays []Holiday
}

// Calendar is the set of holidays of one jurisdiction together with its
// weekend and roll policy. A Calendar never changes after NewCalendar
// returns and is safe for concurrent use.
type Calendar struct {
	code     string
	name     string
	dateRoll DateRoll
	weekend  Weekdays
	holidays Set
}

// NewCalendar validates cfg and creates the calendar
func NewCalendar(cfg Config) (*Calendar, error) {
	code := strings.TrimSpace(cfg.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: calendar %s", ErrEmptyCalendarName, code)
	}

	for _, d := range cfg.Weekend {
		if d < time.Sunday || d > time.Saturday {
			return nil, fmt.Errorf("%w: calendar %s: %d", ErrInvalidWeekday, code, d)
		}
	}
	weekend := NewWeekdays(cfg.Weekend...)
	if weekend.Len() == 0 {
		weekend = StandardWeekend()
	}

	byName := make(map[string]Holiday, len(cfg.Holidays))
	for i, h := range cfg.Holidays {
		if h.kind == 0 || h.name == "" {
			return nil, fmt.Errorf("%w: calendar %s: holiday #%d", ErrEmptyName, code, i+1)
		}
		if _, dup := byName[h.name]; dup {
			continue
		}
		byName[h.name] = h
	}

	dateRoll := cfg.DateRoll
	if dateRoll == nil {
		dateRoll = None{}
	}

	return &Calendar{
		code:     code,
		name:     name,
		dateRoll: dateRoll,
		weekend:  weekend,
		holidays: Set{byName: byName},
	}, nil
}

func (c *Calendar) Code() string       { return c.code }
func (c *Calendar) Name() string       { return c.name }
func (c *Calendar) DateRoll() DateRoll { return c.dateRoll }

// Weekend returns the read-only set of weekend days
func (c *Calendar) Weekend() Weekdays { return c.weekend }

// Holidays returns the read-only set of holidays
func (c *Calendar) Holidays() Set { return c.holidays }

// IsWeekend reports whether t, seen from loc, falls on a weekend day. A nil
// loc means UTC.
func (c *Calendar) IsWeekend(t time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	return c.weekend.Contains(t.In(loc).Weekday())
}

// IsWeekendUTC reports whether t falls on a weekend day in UTC
func (c *Calendar) IsWeekendUTC(t time.Time) bool {
	return c.IsWeekend(t, time.UTC)
}

// Calculate returns the observed dates of every holiday occurring in year,
// sorted by date and then by holiday name. Holidays whose nominal date
// falls on a weekend are passed through the calendar's DateRoll; all others
// keep their nominal date.
func (c *Calendar) Calculate(year int) []HolidayDate {
	names := c.holidays.Names()

	nominal := make(map[string]time.Time, len(names))
	for _, name := range names {
		if d, ok := c.holidays.byName[name].DateForYear(year); ok {
			nominal[name] = d
		}
	}
	nominals := NewNominals(nominal)

	result := make([]HolidayDate, 0, len(nominal))
	for _, name := range names {
		date, ok := nominal[name]
		if !ok {
			continue
		}
		h := c.holidays.byName[name]
		if c.weekend.Contains(date.Weekday()) {
			date = c.dateRoll.RollToObservedDate(date, RollContext{
				Holiday:  h,
				Nominals: nominals,
				Weekend:  c.weekend,
			})
		}
		result = append(result, HolidayDate{holiday: h, date: date})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].date.Equal(result[j].date) {
			return result[i].date.Before(result[j].date)
		}
		return result[i].holiday.name < result[j].holiday.name
	})
	return result
}

// Merge combines c with other into a new calendar. Holidays of c win name
// collisions, weekends are united, and other's roll is applied before c's.
// Merging with nil or with c itself returns c.
func (c *Calendar) Merge(other *Calendar) *Calendar {
	if other == nil || other == c {
		return c
	}

	byName := make(map[string]Holiday, c.holidays.Len()+other.holidays.Len())
	for name, h := range other.holidays.byName {
		byName[name] = h
	}
	for name, h := range c.holidays.byName {
		byName[name] = h
	}

	return &Calendar{
		code:     c.code + "/" + other.code,
		name:     c.name + " + " + other.name,
		dateRoll: Chain(other.dateRoll, c.dateRoll),
		weekend:  c.weekend.Union(other.weekend),
		holidays: Set{byName: byName},
	}
}

func (c *Calendar) String() string {
	return fmt.Sprintf("%s (%s)", c.code, c.name)
}
