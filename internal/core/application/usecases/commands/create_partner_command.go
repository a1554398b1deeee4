package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand represents a request to register a new delivery
// partner with contact details, coverage areas and a working shift.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID  kernel.UUID
	name       string
	email      string
	phone      string
	areas      []string
	shiftStart string
	shiftEnd   string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a new partner.
// Shift boundaries are "HH:MM" strings; their format is validated by the
// domain when the partner is built.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name, email, phone string,
	areas []string,
	shiftStart, shiftEnd string,
) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setContact(name, email, phone),
		cmd.setAreas(areas),
		cmd.setShift(shiftStart, shiftEnd),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's email address.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the coverage areas.
func (c CreatePartnerCommand) Areas() []string {
	return c.areas
}

// ShiftStart returns the shift start boundary.
func (c CreatePartnerCommand) ShiftStart() string {
	return c.shiftStart
}

// ShiftEnd returns the shift end boundary.
func (c CreatePartnerCommand) ShiftEnd() string {
	return c.shiftEnd
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setContact(name, email, phone string) error {
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

func (c *CreatePartnerCommand) setAreas(areas []string) error {
	if len(areas) == 0 {
		return errs.NewValueIsRequiredError("areas")
	}
	c.areas = areas
	return nil
}

func (c *CreatePartnerCommand) setShift(start, end string) error {
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
