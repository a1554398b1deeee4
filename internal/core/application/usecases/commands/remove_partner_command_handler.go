package commands

import (
	"context"
	"errors"
)

// ErrPartnerHasActiveOrders is returned when removal is attempted for a
// partner that still carries assigned orders.
var ErrPartnerHasActiveOrders = errors.New("partner has active orders")

// RemovePartnerCommandHandler handles partner removal. A partner carrying
// load cannot be removed; its orders must be delivered or unassigned first.
type RemovePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewRemovePartnerCommandHandler creates a handler for partner removal.
func NewRemovePartnerCommandHandler(uowFactory PartnerUoWFactory) RemovePartnerCommandHandler {
	return RemovePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner removal command.
// Returns errs.ErrObjectNotFound (wrapped) when the partner does not exist
// and ErrPartnerHasActiveOrders when the partner still carries load.
func (h RemovePartnerCommandHandler) Handle(ctx context.Context, cmd RemovePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if aggregate.CurrentLoad() > 0 {
		return ErrPartnerHasActiveOrders
	}

	if err = partnerRepo.Remove(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
