package partner

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// shiftLayout is the accepted time-of-day format for shift boundaries.
const shiftLayout = "15:04"

// Shift is a time-of-day working window. It is carried on the partner record
// for administration but is not consulted by the assignment decision.
type Shift struct {
	start string
	end   string
}

// NewShift creates a validated Shift. Both boundaries must be "HH:MM" strings.
// A shift may wrap past midnight, so no ordering is enforced between start
// and end.
func NewShift(start, end string) (Shift, error) {
	if start == "" {
		return Shift{}, errs.NewValueIsRequiredError("shift start")
	}
	if end == "" {
		return Shift{}, errs.NewValueIsRequiredError("shift end")
	}
	if _, err := time.Parse(shiftLayout, start); err != nil {
		return Shift{}, errs.NewValueIsInvalidErrorWithCause(
			"shift start", fmt.Errorf("%q is not in HH:MM format", start))
	}
	if _, err := time.Parse(shiftLayout, end); err != nil {
		return Shift{}, errs.NewValueIsInvalidErrorWithCause(
			"shift end", fmt.Errorf("%q is not in HH:MM format", end))
	}

	return Shift{start: start, end: end}, nil
}

// Start returns the shift start as "HH:MM".
func (s Shift) Start() string {
	return s.start
}

// End returns the shift end as "HH:MM".
func (s Shift) End() string {
	return s.end
}

// Validate returns an error for zero-value Shift instances.
func (s Shift) Validate() error {
	if s.start == "" || s.end == "" {
		return errs.NewValueIsRequiredError("shift")
	}
	return nil
}
