package holiday

import (
	"fmt"
	"time"

	"github.com/username/holiday-calendar/pkg/observance"
)

// Definition is the typed construction input for a holiday of any kind.
// Only the fields relevant to Kind are read.
type Definition struct {
	Name        string
	Description string
	Kind        Kind

	// Rollable overrides the kind's default when set
	Rollable *bool

	Month time.Month
	Day   int

	Observance observance.Observance

	Anniversary time.Time
}

// Build validates def and creates the holiday it describes
func Build(def Definition) (Holiday, error) {
	var (
		h   Holiday
		err error
	)

	switch def.Kind {
	case KindFixed:
		h, err = NewFixed(def.Name, def.Description, def.Month, def.Day)
	case KindFloating:
		h, err = NewFloating(def.Name, def.Description, def.Observance)
	case KindSpecialAnniversary:
		h, err = NewSpecialAnniversary(def.Name, def.Description, def.Anniversary)
	default:
		return Holiday{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, def.Kind)
	}
	if err != nil {
		return Holiday{}, err
	}

	if def.Rollable != nil {
		h = h.WithRollable(*def.Rollable)
	}
	return h, nil
}
