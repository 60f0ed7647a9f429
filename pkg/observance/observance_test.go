package observance

import (
	"errors"
	"testing"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/easter"
)

type observanceCase struct {
	year int
	want *time.Time
}

func on(year int, month time.Month, day int) *time.Time {
	d := dateutil.Date(year, month, day)
	return &d
}

// checkObservance verifies Apply against the expected dates and that Apply
// reports no result whenever Test is false.
func checkObservance(t *testing.T, o Observance, cases []observanceCase) {
	t.Helper()
	for _, tc := range cases {
		got, ok := o.Apply(tc.year)
		if tc.want == nil {
			if ok {
				t.Errorf("Apply(%d) = %v, want no result", tc.year, got.Format("2006-01-02"))
			}
			continue
		}
		if !ok {
			t.Errorf("Apply(%d) = no result, want %v", tc.year, tc.want.Format("2006-01-02"))
			continue
		}
		if !got.Equal(*tc.want) {
			t.Errorf("Apply(%d) = %v, want %v", tc.year, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
		if !o.Test(tc.year) {
			t.Errorf("Test(%d) = false but Apply produced %v", tc.year, got.Format("2006-01-02"))
		}
	}
}

func TestFunc(t *testing.T) {
	mlk := Func(func(year int) (time.Time, bool) {
		return dateutil.NthWeekday(year, time.January, time.Monday, 3)
	})
	if !mlk.Test(1) || !mlk.Test(3000) {
		t.Errorf("Func.Test() = false, want true for every year")
	}
	checkObservance(t, mlk, []observanceCase{
		{2021, on(2021, time.January, 18)},
		{2022, on(2022, time.January, 17)},
	})
}

func TestFixed(t *testing.T) {
	checkObservance(t, Fixed{Month: time.July, Day: 4}, []observanceCase{
		{1776, on(1776, time.July, 4)},
		{2021, on(2021, time.July, 4)},
	})
	leap := Fixed{Month: time.February, Day: 29}
	checkObservance(t, leap, []observanceCase{
		{2020, on(2020, time.February, 29)},
		{2021, nil},
	})
	if leap.Test(2021) {
		t.Errorf("Fixed(Feb 29).Test(2021) = true, want false")
	}
}

func TestNthWeekday(t *testing.T) {
	thanksgiving, err := NewNthWeekday(time.November, time.Thursday, 4)
	if err != nil {
		t.Fatalf("NewNthWeekday() error = %v", err)
	}
	checkObservance(t, thanksgiving, []observanceCase{
		{1978, on(1978, time.November, 23)},
		{2021, on(2021, time.November, 25)},
		{2022, on(2022, time.November, 24)},
	})

	fifthMonday, err := NewNthWeekday(time.February, time.Monday, 5)
	if err != nil {
		t.Fatalf("NewNthWeekday() error = %v", err)
	}
	checkObservance(t, fifthMonday, []observanceCase{
		{2021, nil},
		{2016, on(2016, time.February, 29)},
	})

	for _, n := range []int{0, -2, 6} {
		if _, err := NewNthWeekday(time.May, time.Monday, n); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("NewNthWeekday(n=%d) error = %v, want ErrInvalidRule", n, err)
		}
	}
	if _, err := NewNthWeekday(13, time.Monday, 1); !errors.Is(err, ErrInvalidRule) {
		t.Errorf("NewNthWeekday(month=13) error = %v, want ErrInvalidRule", err)
	}
}

func TestFirstAndLastWeekdayOf(t *testing.T) {
	checkObservance(t, FirstWeekdayOf(time.September, time.Monday), []observanceCase{
		{2021, on(2021, time.September, 6)},
		{2022, on(2022, time.September, 5)},
	})
	checkObservance(t, LastWeekdayOf(time.August, time.Monday), []observanceCase{
		{1977, on(1977, time.August, 29)},
		{2021, on(2021, time.August, 30)},
	})
}

func TestWeekdayBefore(t *testing.T) {
	checkObservance(t, WeekdayBefore{Month: time.May, Day: 25, Weekday: time.Monday}, []observanceCase{
		{1976, on(1976, time.May, 24)},
		{1977, on(1977, time.May, 23)},
		{1990, on(1990, time.May, 21)},
		{2021, on(2021, time.May, 24)},
	})
}

func TestSince(t *testing.T) {
	earlyMay := Since{Year: 1978, Rule: FirstWeekdayOf(time.May, time.Monday)}
	checkObservance(t, earlyMay, []observanceCase{
		{1977, nil},
		{1978, on(1978, time.May, 1)},
		{1990, on(1990, time.May, 7)},
	})
	if earlyMay.Test(1977) {
		t.Errorf("Since(1978).Test(1977) = true, want false")
	}
}

func TestCutover(t *testing.T) {
	memorial := Since{Year: 1868, Rule: Cutover{
		Year:   1971,
		Before: Fixed{Month: time.May, Day: 30},
		After:  LastWeekdayOf(time.May, time.Monday),
	}}
	checkObservance(t, memorial, []observanceCase{
		{1867, nil},
		{1868, on(1868, time.May, 30)},
		{1970, on(1970, time.May, 30)},
		{1990, on(1990, time.May, 28)},
		{2021, on(2021, time.May, 31)},
	})
}

func TestOverrides(t *testing.T) {
	spring := Since{Year: 1971, Rule: Overrides{
		Dates: map[int]time.Time{
			2002: dateutil.Date(2002, time.June, 4),
			2022: dateutil.Date(2022, time.June, 2),
		},
		Rule: LastWeekdayOf(time.May, time.Monday),
	}}
	checkObservance(t, spring, []observanceCase{
		{1970, nil},
		{2002, on(2002, time.June, 4)},
		{2021, on(2021, time.May, 31)},
		{2022, on(2022, time.June, 2)},
	})
}

func TestEasterBeforeComputusRange(t *testing.T) {
	for _, o := range []Observance{
		EasterSunday(easter.Western),
		GoodFriday(easter.Western),
		CorpusChristi(easter.Orthodox, true),
		Since{Year: 100, Rule: EasterMonday(easter.Western)},
	} {
		if _, ok := o.Apply(529); ok {
			t.Errorf("%T.Apply(529) produced a date, want no result", o)
		}
		if o.Test(529) {
			t.Errorf("%T.Test(529) = true, want false", o)
		}
	}
}
