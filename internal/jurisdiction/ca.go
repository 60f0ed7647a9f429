package jurisdiction

import (
	"time"

	"github.com/username/holiday-calendar/pkg/easter"
	"github.com/username/holiday-calendar/pkg/holiday"
	"github.com/username/holiday-calendar/pkg/observance"
)

// CA national holidays. Only New Year's Day, Canada Day and Remembrance Day
// move, and only off a Sunday.
func CA() (*holiday.Calendar, error) {
	var t table

	t.fixed("New Year's Day", "First day of new year in the Common Era (CE)", time.January, 1, true)
	t.floating("Family Day", "Day to spend time with the family",
		observance.Since{Year: 1990, Rule: observance.NthWeekday{Month: time.February, Weekday: time.Monday, N: 3}}, false)
	t.floating("Good Friday", "Friday before Easter Sunday",
		observance.GoodFriday(easter.Western), false)
	t.floating("Easter Monday", "Monday after Easter Sunday",
		observance.EasterMonday(easter.Western), false)
	t.floating("Victoria Day", "Official celebration of birthday of Canada's Sovereign",
		observance.Since{Year: 1845, Rule: observance.WeekdayBefore{Month: time.May, Day: 25, Weekday: time.Monday}}, false)
	t.fixed("Canada Day", "Anniversary of Canadian Confederation", time.July, 1, true)
	t.floating("Labour Day", "Celebration of workers in Canada",
		observance.Since{Year: 1894, Rule: observance.FirstWeekdayOf(time.September, time.Monday)}, false)
	t.fixed("National Day For Truth and Reconciliation",
		"Recognition of the legacy of the Canadian Indian residential school system", time.September, 30, false)
	t.floating("Thanksgiving Day", "National day for giving thanks",
		observance.NthWeekday{Month: time.October, Weekday: time.Monday, N: 2}, false)
	t.fixed("Remembrance Day", "Commemoration of armed forces members who have died in the line of duty",
		time.November, 11, true)
	t.fixed("Christmas Day", "Christmas Day", time.December, 25, false)
	t.fixed("Boxing Day", "Day after Christmas", time.December, 26, false)

	return t.calendar("CA", "Canada National Holidays", holiday.ProtectedSunday{
		Names: []string{"New Year's Day", "Canada Day", "Remembrance Day"},
	})
}
