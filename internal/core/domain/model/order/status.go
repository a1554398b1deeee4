package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition table so that arbitrary status values
// coming from requests or storage are always rejected.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//	   ^            │
//	   └────────────┘
//	      (unassign)
type Status int

const (
	// Unknown represents an invalid or undefined status. The zero value is
	// deliberately invalid to catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Pending orders are waiting to be
	// assigned to a delivery partner.
	Pending

	// Assigned indicates the order has been matched with a partner.
	Assigned

	// Picked indicates the assigned partner has collected the order.
	Picked

	// Delivered is the final state. The partner's load is released and its
	// completed-orders counter incremented when this state is reached.
	Delivered
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// transitions is the authoritative table of allowed status moves.
// Anything absent here is a validation error.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Assigned},
		Assigned:  {Picked, Pending},
		Picked:    {Delivered},
		Delivered: {},
	}
}

// StatusFromString parses the wire representation of a status.
// Returns a validation error for anything outside the enum.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
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
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// CanTransitionTo reports whether moving to next is permitted by the
// transition table. Returns a validation error naming both states otherwise.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range transitions()[s] {
		if allowed == next {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", s, next),
	)
}

// TransitionTo performs the state move, returning the next status on success.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.CanTransitionTo(next); err != nil {
		return Unknown, err
	}
	return next, nil
}

// ValidatePartnerReference validates the consistency between order status and
// partner assignment. Assigned and picked orders must reference a partner,
// pending orders must not. Delivered orders keep their partner reference for
// audit purposes, so both forms are allowed there.
func (s Status) ValidatePartnerReference(hasPartner bool) error {
	if hasPartner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must not reference a partner", s),
		)
	}

	if !hasPartner && (s == Assigned || s == Picked) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must reference a partner", s),
		)
	}

	return nil
}
