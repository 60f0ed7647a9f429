// Package jurisdiction holds the built-in holiday tables.
package jurisdiction

import (
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/username/holiday-calendar/pkg/holiday"
	"github.com/username/holiday-calendar/pkg/observance"
)

// Builder creates one built-in calendar
type Builder func() (*holiday.Calendar, error)

// Builtins returns the builders of every built-in calendar keyed by code
func Builtins() map[string]Builder {
	return map[string]Builder{
		"UK": UK,
		"US": US,
		"CA": CA,
		"CH": CH,
	}
}

// table accumulates holidays and keeps every construction error
type table struct {
	holidays []holiday.Holiday
	err      error
}

func (t *table) add(h holiday.Holiday, err error) {
	if err != nil {
		t.err = multierr.Append(t.err, err)
		return
	}
	t.holidays = append(t.holidays, h)
}

func (t *table) fixed(name, description string, month time.Month, day int, rollable bool) {
	h, err := holiday.NewFixed(name, description, month, day)
	t.add(h.WithRollable(rollable), err)
}

func (t *table) floating(name, description string, obs observance.Observance, rollable bool) {
	h, err := holiday.NewFloating(name, description, obs)
	t.add(h.WithRollable(rollable), err)
}

func (t *table) anniversary(name, description string, date time.Time) {
	t.add(holiday.NewSpecialAnniversary(name, description, date))
}

func (t *table) calendar(code, name string, roll holiday.DateRoll) (*holiday.Calendar, error) {
	if t.err != nil {
		return nil, fmt.Errorf("failed to build calendar %s: %w", code, t.err)
	}
	return holiday.NewCalendar(holiday.Config{
		Code:     code,
		Name:     name,
		DateRoll: roll,
		Weekend:  []time.Weekday{time.Saturday, time.Sunday},
		Holidays: t.holidays,
	})
}
