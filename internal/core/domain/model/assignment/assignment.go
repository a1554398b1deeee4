package assignment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ReasonNoAvailablePartner is the failure cause recorded when no eligible
// partner exists for an order's area at assignment time. The reason field is
// free text so future causes can be recorded without schema changes.
const ReasonNoAvailablePartner = "No available partner"

// ErrAssignmentIsNotConstructed is returned when an Assignment instance was
// not created through a constructor function.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewSuccessAssignment or NewFailedAssignment",
)

// Status marks a ledger entry as a successful or failed attempt.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Success records an attempt that assigned a partner.
	Success

	// Failed records an attempt that found no eligible partner.
	Failed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Success: "success",
		Failed:  "failed",
	}
}

// StatusFromString parses the wire representation of a ledger status.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid assignment status", s),
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
			fmt.Errorf("%d is not a valid assignment status", s),
		)
	}
	return nil
}

// Assignment is a single immutable ledger entry. One entry is appended per
// assignment attempt, so one order may accumulate several entries over
// repeated attempts.
type Assignment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	partnerID *kernel.UUID
	status    Status
	reason    string
	timestamp time.Time

	isConstructed bool
}

// NewSuccessAssignment creates a ledger entry for a successful attempt,
// referencing the chosen partner. The timestamp is taken at creation and
// never mutated.
func NewSuccessAssignment(orderID, partnerID kernel.UUID) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		partnerID:     &partnerID,
		status:        Success,
		timestamp:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewFailedAssignment creates a ledger entry for a failed attempt with the
// cause of the failure. No partner is referenced.
func NewFailedAssignment(orderID kernel.UUID, reason string) (*Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	return &Assignment{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		status:        Failed,
		reason:        reason,
		timestamp:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs a ledger entry from persistence.
func RestoreAssignment(
	id, orderID kernel.UUID,
	partnerID *kernel.UUID,
	status Status,
	reason string,
	timestamp time.Time,
) (*Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == Success && partnerID == nil {
		return nil, errs.NewValueIsRequiredError("partnerId")
	}
	if status == Failed && reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Assignment{
		id:            id,
		orderID:       orderID,
		partnerID:     partnerID,
		status:        status,
		reason:        reason,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the Assignment was built via a constructor function.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this attempt was made for.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// PartnerID returns the chosen partner's ID, or nil for failed attempts.
func (a *Assignment) PartnerID() *kernel.UUID {
	return a.partnerID
}

// Status returns whether the attempt succeeded.
func (a *Assignment) Status() Status {
	return a.status
}

// Reason returns the failure cause, empty for successful attempts.
func (a *Assignment) Reason() string {
	return a.reason
}

// Timestamp returns the creation time of the entry.
func (a *Assignment) Timestamp() time.Time {
	return a.timestamp
}
