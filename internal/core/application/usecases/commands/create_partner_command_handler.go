package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler handles the business logic for partner
// registration. New partners start active with zero load and fresh metrics.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shift, err := partner.NewShift(cmd.ShiftStart(), cmd.ShiftEnd())
	if err != nil {
		return err
	}

	aggregate, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Areas(),
		shift,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
