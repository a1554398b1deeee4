package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

// ErrAssignmentIsEngineOnly is returned when a caller tries to move an order
// to assigned status directly. Assignment binds a partner and bumps their
// load, so it only happens through the assignment engine.
var ErrAssignmentIsEngineOnly = errors.New("orders are moved to assigned by the assignment engine")

// UpdateOrderStatusCommandHandler moves orders through their lifecycle and
// applies the partner-side effects of each move in the same transaction:
//
//   - back to pending: the order drops its partner and that partner's load
//     is released
//   - picked: order-only change, the partner keeps carrying the load
//   - delivered: the partner's load is released and the delivery counted in
//     the partner's metrics
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Returns errs.ErrObjectNotFound (wrapped) when the order does not exist and
// a validation error for transitions the lifecycle does not allow.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.NewStatus() == order.Assigned {
		return errs.NewValueIsInvalidErrorWithCause("status", ErrAssignmentIsEngineOnly)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.NewStatus() {
	case order.Pending:
		err = h.unassign(ctx, uow, ord)
	case order.Picked:
		err = ord.MarkPicked()
	case order.Delivered:
		err = h.deliver(ctx, uow, ord)
	default:
		err = errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid target status", cmd.NewStatus()))
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h UpdateOrderStatusCommandHandler) unassign(ctx context.Context, uow UoW, ord *order.Order) error {
	released, err := ord.Unassign()
	if err != nil {
		return err
	}

	return h.withPartner(ctx, uow, released, func(p *partner.Partner) {
		p.ReleaseOrder()
	})
}

func (h UpdateOrderStatusCommandHandler) deliver(ctx context.Context, uow UoW, ord *order.Order) error {
	if err := ord.MarkDelivered(); err != nil {
		return err
	}

	return h.withPartner(ctx, uow, ord.Partner(), func(p *partner.Partner) {
		p.CompleteOrder()
	})
}

func (h UpdateOrderStatusCommandHandler) withPartner(
	ctx context.Context,
	uow UoW,
	partnerID *kernel.UUID,
	mutate func(*partner.Partner),
) error {
	if partnerID == nil {
		return nil
	}

	partnerRepo := uow.PartnerRepository()
	aggregate, err := partnerRepo.Get(ctx, *partnerID)
	if err != nil {
		return err
	}

	mutate(aggregate)
	return partnerRepo.Update(ctx, aggregate)
}
