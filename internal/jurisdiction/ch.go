package jurisdiction

import (
	"time"

	"github.com/username/holiday-calendar/pkg/holiday"
)

// CH has a single national holiday, which never moves
func CH() (*holiday.Calendar, error) {
	var t table

	t.fixed("Swiss National Day", "Date of the Federal Charter of 1291", time.August, 1, false)

	return t.calendar("CH", "Switzerland National Holidays", holiday.None{})
}
