package jurisdiction

import (
	"time"

	"github.com/username/holiday-calendar/pkg/holiday"
	"github.com/username/holiday-calendar/pkg/observance"
)

// US federal holidays, observed on the Friday before or Monday after a weekend
func US() (*holiday.Calendar, error) {
	var t table

	t.fixed("New Year's Day", "First day of new year in the Common Era (CE)", time.January, 1, true)
	t.floating("Martin Luther King Jr. Day", "Observed birthday of Martin Luther King, Jr.",
		observance.Since{Year: 1986, Rule: observance.NthWeekday{Month: time.January, Weekday: time.Monday, N: 3}}, false)
	t.floating("Presidents' Day", "Commemoration of Presidents of the United States",
		observance.Since{Year: 1879, Rule: observance.Cutover{
			Year:   1971,
			Before: observance.Fixed{Month: time.February, Day: 22},
			After:  observance.NthWeekday{Month: time.February, Weekday: time.Monday, N: 3},
		}}, false)
	t.floating("Memorial Day", "Commemoration of fallen service members of US armed forces",
		observance.Since{Year: 1868, Rule: observance.Cutover{
			Year:   1971,
			Before: observance.Fixed{Month: time.May, Day: 30},
			After:  observance.LastWeekdayOf(time.May, time.Monday),
		}}, false)
	t.floating("Juneteenth", "Commemoration of emancipation of African-American slaves",
		observance.Since{Year: 2021, Rule: observance.Fixed{Month: time.June, Day: 19}}, true)
	t.fixed("Independence Day", "Celebration of US Declaration of Independence", time.July, 4, true)
	t.floating("Labor Day", "US Labor Day",
		observance.Since{Year: 1894, Rule: observance.FirstWeekdayOf(time.September, time.Monday)}, false)
	t.floating("Columbus Day", "Anniversary of the arrival of Christopher Columbus in the Americas",
		observance.Since{Year: 1971, Rule: observance.NthWeekday{Month: time.October, Weekday: time.Monday, N: 2}}, false)
	t.fixed("Veterans Day", "Commemoration of all US veterans of foreign wars", time.November, 11, true)
	t.floating("Thanksgiving", "Day to give thanks",
		observance.Since{Year: 1863, Rule: observance.NthWeekday{Month: time.November, Weekday: time.Thursday, N: 4}}, false)
	t.fixed("Christmas Day", "Celebration of traditional Christmas holiday", time.December, 25, true)

	return t.calendar("US", "United States National Holidays", holiday.NearestWeekday{})
}
