package jurisdiction

import (
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/easter"
	"github.com/username/holiday-calendar/pkg/holiday"
	"github.com/username/holiday-calendar/pkg/observance"
)

// UK bank holidays. Christmas and Boxing Day roll as a block so a weekend
// Christmas never lands on Boxing Day; everything else moves to Monday.
func UK() (*holiday.Calendar, error) {
	var t table

	t.fixed("New Year's Day", "First day of new year in the Common Era (CE)", time.January, 1, true)
	t.floating("Good Friday", "Commemoration of the crucifixion of Jesus Christ",
		observance.GoodFriday(easter.Western), false)
	t.floating("Easter Monday", "Day after Easter Sunday",
		observance.EasterMonday(easter.Western), false)
	t.floating("Early May Bank Holiday", "Early May bank holiday",
		observance.Since{Year: 1978, Rule: observance.FirstWeekdayOf(time.May, time.Monday)}, false)
	t.floating("Spring Bank Holiday", "Late May bank holiday",
		observance.Since{Year: 1971, Rule: observance.Overrides{
			Dates: map[int]time.Time{
				2002: dateutil.Date(2002, time.June, 4),
				2012: dateutil.Date(2012, time.June, 4),
				2022: dateutil.Date(2022, time.June, 2),
			},
			Rule: observance.LastWeekdayOf(time.May, time.Monday),
		}}, false)
	t.anniversary("Silver Jubilee Bank Holiday", "Silver Jubilee of Queen Elizabeth II",
		dateutil.Date(1977, time.June, 7))
	t.anniversary("Golden Jubilee Bank Holiday", "Golden Jubilee of Queen Elizabeth II",
		dateutil.Date(2002, time.June, 3))
	t.anniversary("Diamond Jubilee Bank Holiday", "Diamond Jubilee of Queen Elizabeth II",
		dateutil.Date(2012, time.June, 5))
	t.anniversary("Platinum Jubilee Bank Holiday", "Platinum Jubilee of Queen Elizabeth II",
		dateutil.Date(2022, time.June, 3))
	t.floating("Summer Bank Holiday", "Summer bank holiday",
		observance.Since{Year: 1971, Rule: observance.LastWeekdayOf(time.August, time.Monday)}, false)
	t.fixed("Christmas Day", "Commemoration of the birth of Jesus Christ", time.December, 25, true)
	t.fixed("Boxing Day", "", time.December, 26, true)

	return t.calendar("UK", "United Kingdom National Holidays", holiday.Block{
		Names: []string{"Christmas Day", "Boxing Day"},
		Else:  holiday.FollowingWeekday{},
	})
}
