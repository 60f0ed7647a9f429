package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/username/holiday-calendar/pkg/holiday"
)

func testCalendar(t *testing.T) *holiday.Calendar {
	t.Helper()
	christmas, err := holiday.NewFixed("Christmas Day", "Birth of Christ", time.December, 25)
	if err != nil {
		t.Fatal(err)
	}
	newYear, err := holiday.NewFixed("New Year's Day", "", time.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := holiday.NewCalendar(holiday.Config{
		Code:     "XM",
		Name:     "Example",
		DateRoll: holiday.NearestWeekday{},
		Holidays: []holiday.Holiday{christmas, newYear},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func testReport(t *testing.T) HolidayReport {
	c := testCalendar(t)
	return NewHolidayReport(c.Code(), c.Name(), 2021, c.Calculate(2021))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"Csv", FormatCSV, false},
		{"", FormatText, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewHolidayReport(t *testing.T) {
	report := testReport(t)
	if len(report.Holidays) != 2 {
		t.Fatalf("NewHolidayReport() = %d rows, want 2", len(report.Holidays))
	}

	first := report.Holidays[0]
	if first.Date != "2021-01-01" || first.Weekday != "Friday" || first.Kind != "fixed" || !first.Rollable {
		t.Errorf("Holidays[0] = %+v", first)
	}
	// Christmas 2021 is a Saturday and rolls back a day
	second := report.Holidays[1]
	if second.Date != "2021-12-24" || second.Description != "Birth of Christ" {
		t.Errorf("Holidays[1] = %+v", second)
	}
}

func TestHolidays_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Holidays(&buf, FormatJSON, testReport(t)); err != nil {
		t.Fatalf("Holidays(json) error = %v", err)
	}

	var got HolidayReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Calendar != "XM" || got.Year != 2021 || len(got.Holidays) != 2 {
		t.Errorf("Holidays(json) = %+v", got)
	}
	if strings.Contains(buf.String(), `"description": ""`) {
		t.Errorf("Holidays(json) wrote an empty description:\n%s", buf.String())
	}
}

func TestHolidays_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Holidays(&buf, FormatYAML, testReport(t)); err != nil {
		t.Fatalf("Holidays(yaml) error = %v", err)
	}

	var got HolidayReport
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if got.Name != "Example" || len(got.Holidays) != 2 || got.Holidays[1].Date != "2021-12-24" {
		t.Errorf("Holidays(yaml) = %+v", got)
	}
}

func TestHolidays_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Holidays(&buf, FormatCSV, testReport(t)); err != nil {
		t.Fatalf("Holidays(csv) error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Holidays(csv) = %d lines, want header and 2 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "date,weekday,name,description,type,rollable" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "2021-12-24,Friday,Christmas Day,Birth of Christ,") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestHolidays_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Holidays(&buf, FormatText, testReport(t)); err != nil {
		t.Fatalf("Holidays(text) error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Example (XM) 2021", "2021-01-01", "Fri", "Christmas Day"} {
		if !strings.Contains(out, want) {
			t.Errorf("Holidays(text) missing %q:\n%s", want, out)
		}
	}
}

func TestCalendars(t *testing.T) {
	rows := []CalendarRow{NewCalendarRow(testCalendar(t))}
	if rows[0].Holidays != 2 || rows[0].Weekend != "Sunday,Saturday" {
		t.Errorf("NewCalendarRow() = %+v", rows[0])
	}

	for _, format := range []Format{FormatText, FormatJSON, FormatYAML, FormatCSV} {
		var buf bytes.Buffer
		if err := Calendars(&buf, format, rows); err != nil {
			t.Fatalf("Calendars(%s) error = %v", format, err)
		}
		if !strings.Contains(buf.String(), "XM") {
			t.Errorf("Calendars(%s) missing the code:\n%s", format, buf.String())
		}
	}
}
