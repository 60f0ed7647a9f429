package holiday

import "errors"

// Construction errors. Each is wrapped with the offending value.
var (
	ErrEmptyName          = errors.New("holiday name must not be empty")
	ErrInvalidMonthDay    = errors.New("invalid fixed month/day")
	ErrMissingObservance  = errors.New("floating holiday requires an observance")
	ErrMissingAnniversary = errors.New("special anniversary requires a date")
	ErrUnsupportedKind    = errors.New("unsupported holiday type")
	ErrEmptyCode          = errors.New("calendar code must not be empty")
	ErrEmptyCalendarName  = errors.New("calendar name must not be empty")
	ErrInvalidWeekday     = errors.New("invalid weekend day")
)
