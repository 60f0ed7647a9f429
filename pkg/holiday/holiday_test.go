package holiday

import (
	"errors"
	"testing"
	"time"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/easter"
	"github.com/username/holiday-calendar/pkg/observance"
)

func mustFixed(t *testing.T, name string, month time.Month, day int) Holiday {
	t.Helper()
	h, err := NewFixed(name, "", month, day)
	if err != nil {
		t.Fatalf("NewFixed(%q) error = %v", name, err)
	}
	return h
}

func mustFloating(t *testing.T, name string, obs observance.Observance) Holiday {
	t.Helper()
	h, err := NewFloating(name, "", obs)
	if err != nil {
		t.Fatalf("NewFloating(%q) error = %v", name, err)
	}
	return h
}

func TestFixedDateForYear(t *testing.T) {
	independence := mustFixed(t, "Independence Day", time.July, 4)
	for year := 1; year <= 9999; year += 7 {
		got, ok := independence.DateForYear(year)
		if !ok {
			t.Fatalf("DateForYear(%d) not observed", year)
		}
		if want := dateutil.Date(year, time.July, 4); !got.Equal(want) {
			t.Fatalf("DateForYear(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestNewFixedValidation(t *testing.T) {
	tests := []struct {
		name    string
		hname   string
		month   time.Month
		day     int
		wantErr error
	}{
		{"valid", "Christmas Day", time.December, 25, nil},
		{"last day of February", "Leap Eve", time.February, 28, nil},
		{"February 29", "Leap Day", time.February, 29, ErrInvalidMonthDay},
		{"February 30", "Nonsense", time.February, 30, ErrInvalidMonthDay},
		{"April 31", "Nonsense", time.April, 31, ErrInvalidMonthDay},
		{"month 13", "Nonsense", 13, 1, ErrInvalidMonthDay},
		{"day 0", "Nonsense", time.May, 0, ErrInvalidMonthDay},
		{"empty name", "", time.May, 1, ErrEmptyName},
		{"blank name", "   ", time.May, 1, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFixed(tt.hname, "", tt.month, tt.day)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFixed() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFloatingGating(t *testing.T) {
	earlyMay := mustFloating(t, "Early May Bank Holiday",
		observance.Since{Year: 1978, Rule: observance.FirstWeekdayOf(time.May, time.Monday)})

	if d, ok := earlyMay.DateForYear(1977); ok {
		t.Errorf("DateForYear(1977) = %v, want not observed", d)
	}
	got, ok := earlyMay.DateForYear(1978)
	if !ok || !got.Equal(dateutil.Date(1978, time.May, 1)) {
		t.Errorf("DateForYear(1978) = %v, %v, want 1978-05-01", got, ok)
	}
}

func TestFloatingRespectsTestOverApply(t *testing.T) {
	// a rule whose Apply ignores its own Test
	leaky := leakyObservance{}
	h := mustFloating(t, "Leaky", leaky)
	if _, ok := h.DateForYear(2000); ok {
		t.Errorf("DateForYear(2000) observed although Test is false")
	}
}

type leakyObservance struct{}

func (leakyObservance) Apply(year int) (time.Time, bool) {
	return dateutil.Date(year, time.March, 1), true
}
func (leakyObservance) Test(int) bool { return false }

func TestFloatingBeforeEaster(t *testing.T) {
	goodFriday := mustFloating(t, "Good Friday", observance.GoodFriday(easter.Western))
	if _, ok := goodFriday.DateForYear(100); ok {
		t.Errorf("DateForYear(100) observed, want no result")
	}
	got, ok := goodFriday.DateForYear(2021)
	if !ok || !got.Equal(dateutil.Date(2021, time.April, 2)) {
		t.Errorf("DateForYear(2021) = %v, %v, want 2021-04-02", got, ok)
	}
}

func TestSpecialAnniversary(t *testing.T) {
	jubilee, err := NewSpecialAnniversary("Silver Jubilee Bank Holiday", "Silver Jubilee of Queen Elizabeth II",
		time.Date(1977, time.June, 7, 15, 30, 0, 0, time.FixedZone("X", 3600)))
	if err != nil {
		t.Fatalf("NewSpecialAnniversary() error = %v", err)
	}

	if jubilee.Rollable() {
		t.Errorf("Rollable() = true, want false for an anniversary")
	}
	for _, year := range []int{1976, 1978, 2002} {
		if _, ok := jubilee.DateForYear(year); ok {
			t.Errorf("DateForYear(%d) observed, want no result", year)
		}
	}
	got, ok := jubilee.DateForYear(1977)
	if !ok || !got.Equal(dateutil.Date(1977, time.June, 7)) {
		t.Errorf("DateForYear(1977) = %v, %v, want 1977-06-07", got, ok)
	}

	if _, err := NewSpecialAnniversary("Nothing", "", time.Time{}); !errors.Is(err, ErrMissingAnniversary) {
		t.Errorf("NewSpecialAnniversary(zero) error = %v, want ErrMissingAnniversary", err)
	}
}

func TestNewFloatingValidation(t *testing.T) {
	if _, err := NewFloating("Easter", "", nil); !errors.Is(err, ErrMissingObservance) {
		t.Errorf("NewFloating(nil) error = %v, want ErrMissingObservance", err)
	}
	if _, err := NewFloating("", "", observance.EasterSunday(easter.Western)); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewFloating(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestDefaults(t *testing.T) {
	fixed := mustFixed(t, "New Year's Day", time.January, 1)
	floating := mustFloating(t, "Easter Monday", observance.EasterMonday(easter.Western))

	if fixed.Description() != "" {
		t.Errorf("Description() = %q, want empty", fixed.Description())
	}
	if !fixed.Rollable() || !floating.Rollable() {
		t.Errorf("Rollable() = %v / %v, want true for fixed and floating", fixed.Rollable(), floating.Rollable())
	}
	if fixed.WithRollable(false).Rollable() {
		t.Errorf("WithRollable(false).Rollable() = true")
	}
	if !fixed.Rollable() {
		t.Errorf("WithRollable changed the receiver")
	}

	if m, d, ok := fixed.MonthDay(); !ok || m != time.January || d != 1 {
		t.Errorf("MonthDay() = %v, %d, %v", m, d, ok)
	}
	if _, _, ok := floating.MonthDay(); ok {
		t.Errorf("MonthDay() ok for a floating holiday")
	}
	if floating.Observance() == nil {
		t.Errorf("Observance() = nil for a floating holiday")
	}
	if _, ok := fixed.Anniversary(); ok {
		t.Errorf("Anniversary() ok for a fixed holiday")
	}
}

func TestEqual(t *testing.T) {
	a := mustFixed(t, "Christmas Day", time.December, 25)
	b := mustFixed(t, "Christmas Day", time.December, 25).WithRollable(false)
	c := mustFixed(t, "Christmas Day", time.December, 26)
	d, _ := NewFixed("Christmas Day", "Birth of Jesus Christ", time.December, 25)

	if !a.Equal(b) {
		t.Errorf("Equal() = false for holidays differing only in rollable")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Errorf("Equal() = true for holidays with different payload or description")
	}

	e1 := mustFloating(t, "Easter", observance.EasterSunday(easter.Western))
	e2 := mustFloating(t, "Easter", observance.EasterSunday(easter.Western))
	e3 := mustFloating(t, "Easter", observance.EasterSunday(easter.Orthodox))
	if !e1.Equal(e2) {
		t.Errorf("Equal() = false for identical observances")
	}
	if e1.Equal(e3) {
		t.Errorf("Equal() = true for different reckonings")
	}

	fn := observance.Func(func(year int) (time.Time, bool) { return dateutil.Date(year, time.March, 1), true })
	f1 := mustFloating(t, "F", fn)
	f2 := mustFloating(t, "F", fn)
	if !f1.Equal(f2) {
		t.Errorf("Equal() = false for the same Func")
	}

	if a.Equal(e1) {
		t.Errorf("Equal() = true across kinds")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"fixed", KindFixed, false},
		{"FLOATING", KindFloating, false},
		{"special_anniversary", KindSpecialAnniversary, false},
		{"special-anniversary", KindSpecialAnniversary, false},
		{"lunar", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", tt.input, got, err, tt.want)
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedKind) {
			t.Errorf("ParseKind(%q) error = %v, want ErrUnsupportedKind", tt.input, err)
		}
	}
}

func TestBuild(t *testing.T) {
	no := false
	h, err := Build(Definition{
		Name:        "Christmas Day",
		Description: "Christmas Day",
		Kind:        KindFixed,
		Rollable:    &no,
		Month:       time.December,
		Day:         25,
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if h.Rollable() || h.Kind() != KindFixed || h.Description() != "Christmas Day" {
		t.Errorf("Build() = %+v", h)
	}

	jubilee, err := Build(Definition{
		Name:        "Platinum Jubilee Bank Holiday",
		Kind:        KindSpecialAnniversary,
		Anniversary: dateutil.Date(2022, time.June, 3),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := jubilee.DateForYear(2022); !ok {
		t.Errorf("DateForYear(2022) not observed")
	}

	if _, err := Build(Definition{Name: "X", Kind: Kind(42)}); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("Build(Kind(42)) error = %v, want ErrUnsupportedKind", err)
	}
	if _, err := Build(Definition{Name: "X", Kind: KindFloating}); !errors.Is(err, ErrMissingObservance) {
		t.Errorf("Build(floating without observance) error = %v, want ErrMissingObservance", err)
	}
}
