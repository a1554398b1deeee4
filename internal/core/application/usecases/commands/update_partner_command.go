package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to update an existing partner's
// contact details, coverage areas, shift and operational status. The load
// counter and metrics are never updated directly; they only change through
// the order lifecycle.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID  kernel.UUID
	name       string
	email      string
	phone      string
	areas      []string
	shiftStart string
	shiftEnd   string
	status     partner.Status

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner. The status
// is supplied in its wire form ("active" or "inactive").
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	name, email, phone string,
	areas []string,
	shiftStart, shiftEnd string,
	status string,
) (UpdatePartnerCommand, error) {
	cmd := UpdatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setContact(name, email, phone),
		cmd.setAreas(areas),
		cmd.setShift(shiftStart, shiftEnd),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the new name.
func (c UpdatePartnerCommand) Name() string {
	return c.name
}

// Email returns the new email address.
func (c UpdatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the new phone number.
func (c UpdatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the new coverage areas.
func (c UpdatePartnerCommand) Areas() []string {
	return c.areas
}

// ShiftStart returns the new shift start boundary.
func (c UpdatePartnerCommand) ShiftStart() string {
	return c.shiftStart
}

// ShiftEnd returns the new shift end boundary.
func (c UpdatePartnerCommand) ShiftEnd() string {
	return c.shiftEnd
}

// Status returns the new operational status.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *UpdatePartnerCommand) setContact(name, email, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.name = name
	c.email = email
	c.phone = phone
	return nil
}

func (c *UpdatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}
	c.areas = areas
	return nil
}

func (c *UpdatePartnerCommand) setShift(start, end string) error {
	if start == "" {
		return errs.NewValueIsRequiredError("shiftStart")
	}
	if end == "" {
		return errs.NewValueIsRequiredError("shiftEnd")
	}
	c.shiftStart = start
	c.shiftEnd = end
	return nil
}

func (c *UpdatePartnerCommand) setStatus(status string) error {
	parsed, err := partner.StatusFromString(status)
	if err != nil {
		return err
	}
	c.status = parsed
	return nil
}
