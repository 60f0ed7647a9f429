// Package render writes calculated holidays in the supported output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/username/holiday-calendar/pkg/holiday"
)

// Format is an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ParseFormat parses a format name in any case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unsupported output format: %q", s)
}

// HolidayRow is one observed holiday
type HolidayRow struct {
	Date        string `json:"date" yaml:"date" csv:"date"`
	Weekday     string `json:"weekday" yaml:"weekday" csv:"weekday"`
	Name        string `json:"name" yaml:"name" csv:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" csv:"description"`
	Kind        string `json:"type" yaml:"type" csv:"type"`
	Rollable    bool   `json:"rollable" yaml:"rollable" csv:"rollable"`
}

// HolidayReport is the calculated year of one calendar
type HolidayReport struct {
	Calendar string       `json:"calendar" yaml:"calendar"`
	Name     string       `json:"name" yaml:"name"`
	Year     int          `json:"year" yaml:"year"`
	Holidays []HolidayRow `json:"holidays" yaml:"holidays"`
}

// NewHolidayReport converts calculated dates into a report
func NewHolidayReport(code, name string, year int, dates []holiday.HolidayDate) HolidayReport {
	rows := make([]HolidayRow, 0, len(dates))
	for _, hd := range dates {
		rows = append(rows, HolidayRow{
			Date:        hd.Date().Format("2006-01-02"),
			Weekday:     hd.Date().Weekday().String(),
			Name:        hd.Name(),
			Description: hd.Description(),
			Kind:        hd.Holiday().Kind().String(),
			Rollable:    hd.Holiday().Rollable(),
		})
	}
	return HolidayReport{Calendar: code, Name: name, Year: year, Holidays: rows}
}

// Holidays writes the report in format
func Holidays(w io.Writer, format Format, report HolidayReport) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatCSV:
		rows := report.Holidays
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "%s (%s) %d\n", report.Name, report.Calendar, report.Year)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range report.Holidays {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Date, row.Weekday[:3], row.Name)
	}
	return tw.Flush()
}

// CalendarRow describes one registered calendar
type CalendarRow struct {
	Code     string `json:"code" yaml:"code" csv:"code"`
	Name     string `json:"name" yaml:"name" csv:"name"`
	Holidays int    `json:"holidays" yaml:"holidays" csv:"holidays"`
	Weekend  string `json:"weekend" yaml:"weekend" csv:"weekend"`
}

// NewCalendarRow summarizes a calendar
func NewCalendarRow(c *holiday.Calendar) CalendarRow {
	days := c.Weekend().Slice()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return CalendarRow{
		Code:     c.Code(),
		Name:     c.Name(),
		Holidays: c.Holidays().Len(),
		Weekend:  strings.Join(names, ","),
	}
}

// Calendars writes the calendar list in format
func Calendars(w io.Writer, format Format, rows []CalendarRow) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	case FormatCSV:
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d holidays\t%s\n", row.Code, row.Name, row.Holidays, row.Weekend)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}
