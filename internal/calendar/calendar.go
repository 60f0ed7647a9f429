package calendar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/internal/jurisdiction"
	"github.com/username/holiday-calendar/pkg/holiday"
)

// ErrUnknownCalendar is returned when no calendar is registered under a code
var ErrUnknownCalendar = errors.New("unknown calendar")

// Registry looks up holiday calendars by case-insensitive code and caches
// their calculated years
type Registry struct {
	logger *zap.Logger

	mu        sync.RWMutex
	builders  map[string]jurisdiction.Builder
	calendars map[string]*holiday.Calendar

	cache   map[cacheKey][]holiday.HolidayDate
	cacheMu sync.RWMutex
}

type cacheKey struct {
	code string
	year int
}

// NewRegistry creates a Registry holding the built-in calendars. They are
// built on first use.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		logger:    logger,
		builders:  make(map[string]jurisdiction.Builder),
		calendars: make(map[string]*holiday.Calendar),
		cache:     make(map[cacheKey][]holiday.HolidayDate),
	}
	for code, b := range jurisdiction.Builtins() {
		r.builders[normalize(code)] = b
	}
	return r
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Register adds c, replacing any calendar with the same code
func (r *Registry) Register(c *holiday.Calendar) {
	code := normalize(c.Code())

	r.mu.Lock()
	_, replaced := r.calendars[code]
	if _, ok := r.builders[code]; ok {
		replaced = true
		delete(r.builders, code)
	}
	r.calendars[code] = c
	r.mu.Unlock()

	r.evict(code)

	r.logger.Info("Calendar registered",
		zap.String("code", code),
		zap.String("name", c.Name()),
		zap.Int("holidays", c.Holidays().Len()),
		zap.Bool("replaced", replaced))
}

// Get returns the calendar registered under code
func (r *Registry) Get(code string) (*holiday.Calendar, error) {
	key := normalize(code)

	r.mu.RLock()
	c, ok := r.calendars[key]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// built by another goroutine while we waited
	if c, ok := r.calendars[key]; ok {
		return c, nil
	}
	build, ok := r.builders[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, code)
	}
	c, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar %s: %w", key, err)
	}
	r.calendars[key] = c

	r.logger.Debug("Built-in calendar loaded",
		zap.String("code", key),
		zap.Int("holidays", c.Holidays().Len()))

	return c, nil
}

// Codes returns every registered code in ascending order
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(r.builders)+len(r.calendars))
	for code := range r.builders {
		seen[code] = struct{}{}
	}
	for code := range r.calendars {
		seen[code] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Calculate returns the observed holidays of the calendar in year. Results
// are cached per code and year; callers receive their own copy.
func (r *Registry) Calculate(code string, year int) ([]holiday.HolidayDate, error) {
	key := cacheKey{code: normalize(code), year: year}

	r.cacheMu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.cacheMu.RUnlock()
		r.logger.Debug("Using cached holidays",
			zap.String("code", key.code),
			zap.Int("year", year))
		return copyDates(cached), nil
	}
	r.cacheMu.RUnlock()

	c, err := r.Get(code)
	if err != nil {
		return nil, err
	}
	dates := c.Calculate(year)

	r.cacheMu.Lock()
	r.cache[key] = dates
	r.cacheMu.Unlock()

	r.logger.Debug("Holidays calculated",
		zap.String("code", key.code),
		zap.Int("year", year),
		zap.Int("count", len(dates)))

	return copyDates(dates), nil
}

// evict drops every cached year of one calendar
func (r *Registry) evict(code string) {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	for key := range r.cache {
		if key.code == code {
			delete(r.cache, key)
		}
	}
}

// ClearCache clears the cache
func (r *Registry) ClearCache() {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	r.cache = make(map[cacheKey][]holiday.HolidayDate)
	r.logger.Info("Calendar cache cleared")
}

func copyDates(dates []holiday.HolidayDate) []holiday.HolidayDate {
	out := make([]holiday.HolidayDate, len(dates))
	copy(out, dates)
	return out
}
