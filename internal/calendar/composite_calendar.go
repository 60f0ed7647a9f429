package calendar

import (
	"errors"

	"go.uber.org/zap"

	"github.com/username/holiday-calendar/pkg/holiday"
)

// Composite resolves codes and merges their calendars in order. The first
// calendar's holidays win name collisions and its roll runs last.
func (r *Registry) Composite(codes ...string) (*holiday.Calendar, error) {
	if len(codes) == 0 {
		return nil, errors.New("at least one calendar code is required")
	}

	merged, err := r.Get(codes[0])
	if err != nil {
		return nil, err
	}
	for _, code := range codes[1:] {
		next, err := r.Get(code)
		if err != nil {
			return nil, err
		}
		merged = merged.Merge(next)
	}

	if len(codes) > 1 {
		r.logger.Info("Calendars merged",
			zap.Strings("codes", codes),
			zap.String("code", merged.Code()),
			zap.Int("holidays", merged.Holidays().Len()))
	}
	return merged, nil
}
