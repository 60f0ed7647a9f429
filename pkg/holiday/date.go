package holiday

import "time"

// HolidayDate is a holiday paired with the date it is observed in a given year
type HolidayDate struct {
	holiday Holiday
	date    time.Time
}

func (hd HolidayDate) Holiday() Holiday    { return hd.holiday }
func (hd HolidayDate) Date() time.Time     { return hd.date }
func (hd HolidayDate) Name() string        { return hd.holiday.name }
func (hd HolidayDate) Description() string { return hd.holiday.description }

func (hd HolidayDate) String() string {
	return hd.date.Format("2006-01-02") + " " + hd.holiday.name
}
