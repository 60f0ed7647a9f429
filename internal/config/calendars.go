package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/calendar"
	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/easter"
	"github.com/username/holiday-calendar/pkg/holiday"
	"github.com/username/holiday-calendar/pkg/observance"
)

// ErrUnsupportedRoll is returned for an unknown roll policy name
var ErrUnsupportedRoll = errors.New("unsupported roll policy")

// CalendarConfig defines a user calendar
type CalendarConfig struct {
	Code        string          `mapstructure:"code"`
	Name        string          `mapstructure:"name"`
	Weekend     []string        `mapstructure:"weekend"` // weekday names; Saturday and Sunday when empty
	Roll        RollConfig      `mapstructure:"roll"`
	HolidayFile string          `mapstructure:"holiday_file"` // see calendar.LoadHolidayFile
	Holidays    []HolidayConfig `mapstructure:"holidays"`
}

// RollConfig selects the roll policy of a calendar
type RollConfig struct {
	Policy        string   `mapstructure:"policy"` // none, nearest-weekday, following-weekday, protected-sunday, block
	Names         []string `mapstructure:"names"`  // holidays protected or blocked
	Days          int      `mapstructure:"days"`   // protected-sunday shift
	Else          string   `mapstructure:"else"`   // block: policy for holidays outside the block
	HonorRollable bool     `mapstructure:"honor_rollable"`
}

// HolidayConfig defines one holiday
type HolidayConfig struct {
	Name        string           `mapstructure:"name"`
	Description string           `mapstructure:"description"`
	Type        string           `mapstructure:"type"` // fixed, floating or special_anniversary
	Rollable    *bool            `mapstructure:"rollable"`
	Date        string           `mapstructure:"date"` // --MM-DD for fixed, YYYY-MM-DD for special_anniversary
	Observance  ObservanceConfig `mapstructure:"observance"`
}

// ObservanceConfig defines the rule of a floating holiday
type ObservanceConfig struct {
	// easter, easter-offset, nth-weekday, weekday-before, fixed, or a named
	// observance such as good-friday or ascension
	Rule         string `mapstructure:"rule"`
	Reckoning    string `mapstructure:"reckoning"` // western (default) or orthodox
	Offset       int    `mapstructure:"offset"`
	SnapToSunday bool   `mapstructure:"snap_to_sunday"`

	Month   int    `mapstructure:"month"`
	Day     int    `mapstructure:"day"`
	Weekday string `mapstructure:"weekday"`
	N       int    `mapstructure:"n"` // nth-weekday occurrence, -1 for last

	Since     int            `mapstructure:"since"`     // first year observed
	Cutover   *CutoverConfig `mapstructure:"cutover"`   // fixed date used before a statute change
	Overrides []string       `mapstructure:"overrides"` // YYYY-MM-DD replacing the rule's date that year
}

// CutoverConfig keeps a fixed date for years before Year
type CutoverConfig struct {
	Year int    `mapstructure:"year"`
	Date string `mapstructure:"date"` // --MM-DD
}

// BuildCalendars builds every configured calendar. All invalid definitions
// are reported together.
func (c *Config) BuildCalendars(logger *zap.Logger) ([]*holiday.Calendar, error) {
	var (
		calendars []*holiday.Calendar
		errs      error
	)

	for i, def := range c.Calendars {
		cal, err := def.Build(logger)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("calendars[%d] (%s): %w", i, def.Code, err))
			continue
		}
		calendars = append(calendars, cal)
	}

	if errs != nil {
		return nil, errs
	}
	return calendars, nil
}

// Build creates the calendar
func (cc CalendarConfig) Build(logger *zap.Logger) (*holiday.Calendar, error) {
	var errs error

	weekend := make([]time.Weekday, 0, len(cc.Weekend))
	for _, name := range cc.Weekend {
		wd, err := dateutil.ParseWeekday(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		weekend = append(weekend, wd)
	}

	roll, err := cc.Roll.Build()
	if err != nil {
		errs = multierr.Append(errs, err)
	}

	holidays := make([]holiday.Holiday, 0, len(cc.Holidays))
	for _, hc := range cc.Holidays {
		h, err := hc.Build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("holiday '%s': %w", hc.Name, err))
			continue
		}
		holidays = append(holidays, h)
	}

	if cc.HolidayFile != "" {
		extra, err := calendar.LoadHolidayFile(cc.HolidayFile, logger)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		holidays = append(holidays, extra...)
	}

	if errs != nil {
		return nil, errs
	}

	return holiday.NewCalendar(holiday.Config{
		Code:     strings.ToUpper(strings.TrimSpace(cc.Code)),
		Name:     cc.Name,
		DateRoll: roll,
		Weekend:  weekend,
		Holidays: holidays,
	})
}

// Build creates the roll policy
func (rc RollConfig) Build() (holiday.DateRoll, error) {
	roll, err := simpleRoll(rc.Policy)
	if errors.Is(err, ErrUnsupportedRoll) {
		switch normalizeName(rc.Policy) {
		case "protected-sunday":
			roll, err = holiday.ProtectedSunday{Names: rc.Names, Days: rc.Days}, nil
		case "block":
			var fallback holiday.DateRoll
			fallback, err = simpleRoll(rc.Else)
			roll = holiday.Block{Names: rc.Names, Else: fallback}
		}
	}
	if err != nil {
		return nil, err
	}

	if rc.HonorRollable {
		roll = holiday.HonorRollable{Roll: roll}
	}
	return roll, nil
}

func simpleRoll(policy string) (holiday.DateRoll, error) {
	switch normalizeName(policy) {
	case "", "none":
		return holiday.None{}, nil
	case "nearest-weekday":
		return holiday.NearestWeekday{}, nil
	case "following-weekday":
		return holiday.FollowingWeekday{}, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedRoll, policy)
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

// Build creates the holiday
func (hc HolidayConfig) Build() (holiday.Holiday, error) {
	kind, err := holiday.ParseKind(hc.Type)
	if err != nil {
		return holiday.Holiday{}, err
	}

	def := holiday.Definition{
		Name:        hc.Name,
		Description: hc.Description,
		Kind:        kind,
		Rollable:    hc.Rollable,
	}

	switch kind {
	case holiday.KindFixed:
		def.Month, def.Day, err = dateutil.ParseMonthDay(hc.Date)
	case holiday.KindSpecialAnniversary:
		def.Anniversary, err = dateutil.ParseDate(hc.Date)
	case holiday.KindFloating:
		def.Observance, err = hc.Observance.Build()
	}
	if err != nil {
		return holiday.Holiday{}, err
	}

	return holiday.Build(def)
}

// Build creates the observance with its overrides, cutover and since gates
// applied in that order
func (oc ObservanceConfig) Build() (observance.Observance, error) {
	rule, err := oc.rule()
	if err != nil {
		return nil, err
	}

	if len(oc.Overrides) > 0 {
		dates := make(map[int]time.Time, len(oc.Overrides))
		for _, s := range oc.Overrides {
			d, err := dateutil.ParseDate(s)
			if err != nil {
				return nil, fmt.Errorf("override: %w", err)
			}
			dates[d.Year()] = d
		}
		rule = observance.Overrides{Dates: dates, Rule: rule}
	}

	if oc.Cutover != nil {
		month, day, err := dateutil.ParseMonthDay(oc.Cutover.Date)
		if err != nil {
			return nil, fmt.Errorf("cutover: %w", err)
		}
		rule = observance.Cutover{
			Year:   oc.Cutover.Year,
			Before: observance.Fixed{Month: month, Day: day},
			After:  rule,
		}
	}

	if oc.Since != 0 {
		rule = observance.Since{Year: oc.Since, Rule: rule}
	}
	return rule, nil
}

func (oc ObservanceConfig) rule() (observance.Observance, error) {
	reckoning := easter.Western
	if oc.Reckoning != "" {
		r, err := easter.ParseReckoning(oc.Reckoning)
		if err != nil {
			return nil, err
		}
		reckoning = r
	}

	switch normalizeName(oc.Rule) {
	case "easter":
		return observance.EasterSunday(reckoning), nil
	case "easter-offset":
		return observance.EasterOffset{Reckoning: reckoning, Days: oc.Offset, SnapToSunday: oc.SnapToSunday}, nil
	case "fixed":
		if _, err := dateutil.NewDate(2000, time.Month(oc.Month), oc.Day); err != nil {
			return nil, fmt.Errorf("%w: %v", observance.ErrInvalidRule, err)
		}
		return observance.Fixed{Month: time.Month(oc.Month), Day: oc.Day}, nil
	case "nth-weekday", "weekday-before":
		wd, err := dateutil.ParseWeekday(oc.Weekday)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", observance.ErrInvalidRule, err)
		}
		if normalizeName(oc.Rule) == "nth-weekday" {
			return observance.NewNthWeekday(time.Month(oc.Month), wd, oc.N)
		}
		if _, err := dateutil.NewDate(2000, time.Month(oc.Month), oc.Day); err != nil {
			return nil, fmt.Errorf("%w: %v", observance.ErrInvalidRule, err)
		}
		return observance.WeekdayBefore{Month: time.Month(oc.Month), Day: oc.Day, Weekday: wd}, nil
	case "palm-sunday":
		return observance.PalmSunday(reckoning), nil
	case "ash-wednesday":
		return observance.AshWednesday(reckoning), nil
	case "good-friday":
		return observance.GoodFriday(reckoning), nil
	case "easter-monday":
		return observance.EasterMonday(reckoning), nil
	case "ascension":
		days := oc.Offset
		if days == 0 {
			days = observance.MinAscensionOffset
		}
		return observance.AscensionDay(reckoning, days)
	case "whit-sunday":
		return observance.WhitSunday(reckoning), nil
	case "whit-monday":
		return observance.WhitMonday(reckoning), nil
	case "corpus-christi":
		return observance.CorpusChristi(reckoning, oc.SnapToSunday), nil
	case "may-day":
		return observance.MayDay(false), nil
	case "may-day-monday":
		return observance.MayDay(true), nil
	case "europe-day":
		return observance.EuropeDay(true), nil
	case "council-of-europe-day":
		return observance.EuropeDay(false), nil
	}
	return nil, fmt.Errorf("%w: unsupported rule '%s'", observance.ErrInvalidRule, oc.Rule)
}
