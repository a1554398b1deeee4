package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemovePartnerCommandIsNotConstructed = errors.New(
	"RemovePartnerCommand must be created via NewRemovePartnerCommand constructor",
)

// RemovePartnerCommand represents a request to remove a partner from the
// directory. Ledger entries referencing the partner are kept for audit.
type RemovePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePartnerCommand creates a command to remove a partner.
func NewRemovePartnerCommand(partnerID kernel.UUID) (RemovePartnerCommand, error) {
	cmd := RemovePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := partnerID.Validate(); err != nil {
		return RemovePartnerCommand{}, err
	}
	cmd.partnerID = partnerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePartnerCommand) Validate() error {
	return c.guard.Validate(ErrRemovePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to remove.
func (c RemovePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}
