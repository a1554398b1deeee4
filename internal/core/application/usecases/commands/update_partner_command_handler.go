package commands

import (
	"context"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler handles partner updates. The partner is loaded,
// mutated through its aggregate methods and stored back in one transaction.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner updates.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
// Returns errs.ErrObjectNotFound (wrapped) when the partner does not exist.
func (h UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shift, err := partner.NewShift(cmd.ShiftStart(), cmd.ShiftEnd())
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

	partnerRepo := uow.PartnerRepository()
	aggregate, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateProfile(cmd.Name(), cmd.Email(), cmd.Phone()); err != nil {
		return err
	}
	if err = aggregate.UpdateAreas(cmd.Areas()); err != nil {
		return err
	}
	if err = aggregate.UpdateShift(shift); err != nil {
		return err
	}

	if cmd.Status() == partner.Active {
		aggregate.Activate()
	} else {
		aggregate.Deactivate()
	}

	if err = partnerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
