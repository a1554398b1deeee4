package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the operational availability flag of a partner. It is independent
// of load: an active partner at full capacity is unavailable for new orders
// but still active.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active partners participate in assignment.
	Active

	// Inactive partners are never eligible regardless of load.
	Inactive
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// StatusFromString parses the wire representation of a partner status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid partner status", s),
	)
}

// String returns the wire representation of the status. Implements
// fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status value is one of the enum members.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid partner status", s),
		)
	}
	return nil
}
