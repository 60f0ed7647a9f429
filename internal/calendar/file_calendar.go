package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/pkg/dateutil"
	"github.com/username/holiday-calendar/pkg/holiday"
)

// LoadHolidayFile reads extra holidays from a local text file.
//
// Format: DATE NAME [| description], one per line. DATE is either a full
// date (2022-06-03), giving a one-off special anniversary, or a month and
// day (--08-01 or 08-01), giving a fixed holiday. Blank lines and lines
// starting with # are ignored; malformed lines are logged and skipped.
func LoadHolidayFile(path string, logger *zap.Logger) ([]holiday.Holiday, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	var holidays []holiday.Holiday
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		h, err := parseHolidayLine(line)
		if err != nil {
			logger.Warn("Invalid holiday line",
				zap.String("file", path),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		holidays = append(holidays, h)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading holiday file: %w", err)
	}

	logger.Info("Holiday file loaded",
		zap.String("file", path),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

func parseHolidayLine(line string) (holiday.Holiday, error) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) < 2 {
		return holiday.Holiday{}, fmt.Errorf("expected DATE NAME, got %q", line)
	}

	dateStr := parts[0]
	name, description := parts[1], ""
	if i := strings.Index(name, "|"); i >= 0 {
		description = strings.TrimSpace(name[i+1:])
		name = name[:i]
	}
	name = strings.TrimSpace(name)

	if date, err := dateutil.ParseDate(dateStr); err == nil {
		return holiday.NewSpecialAnniversary(name, description, date)
	}

	month, day, err := dateutil.ParseMonthDay(dateStr)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return holiday.NewFixed(name, description, month, day)
}
