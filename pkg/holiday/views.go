package holiday

import (
	"sort"
	"time"
)

// Weekdays is a read-only set of weekdays. Accessors return copies, so a
// Weekdays shared between goroutines can never change under a reader.
type Weekdays struct {
	days uint8 // bit i set for time.Weekday(i)
}

// NewWeekdays builds a set from days, ignoring values outside Sunday..Saturday
func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday {
			w.days |= 1 << uint(d)
		}
	}
	return w
}

// StandardWeekend is Saturday and Sunday
func StandardWeekend() Weekdays {
	return NewWeekdays(time.Saturday, time.Sunday)
}

func (w Weekdays) Contains(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday && w.days&(1<<uint(d)) != 0
}

func (w Weekdays) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			n++
		}
	}
	return n
}

// Slice returns the days in Sunday-first order
func (w Weekdays) Slice() []time.Weekday {
	out := make([]time.Weekday, 0, w.Len())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// Union returns the days in either set
func (w Weekdays) Union(other Weekdays) Weekdays {
	return Weekdays{days: w.days | other.days}
}

func (w Weekdays) String() string {
	s := "["
	for i, d := range w.Slice() {
		if i > 0 {
			s += " "
		}
		s += d.String()
	}
	return s + "]"
}

// Set is a read-only collection of holidays keyed by name
type Set struct {
	byName map[string]Holiday
}

// Len returns the number of holidays
func (s Set) Len() int { return len(s.byName) }

// Get looks up a holiday by name
func (s Set) Get(name string) (Holiday, bool) {
	h, ok := s.byName[name]
	return h, ok
}

// Contains reports whether a holiday with the given name is present
func (s Set) Contains(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Names returns the holiday names in ascending order
func (s Set) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the holidays ordered by name
func (s Set) All() []Holiday {
	out := make([]Holiday, 0, len(s.byName))
	for _, name := range s.Names() {
		out = append(out, s.byName[name])
	}
	return out
}
