package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ErrOrderIsNotPending is returned when assignment is attempted for an order
// that already left pending status.
var ErrOrderIsNotPending = errors.New("order is not pending")

// AssignmentResult is the outcome of one assignment attempt. Failed attempts
// are normal outcomes, not errors: the order stays pending and the cause is
// recorded in the ledger.
type AssignmentResult struct {
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	Status    assignment.Status
	Reason    string
}

// AssignOrderCommandHandler orchestrates a single assignment attempt.
//
// A successful attempt updates the order, the partner's load counter and the
// ledger in one transaction, so a crash can never leave a partner loaded
// without an assigned order or vice versa. A failed attempt is recorded in
// its own transaction: the failed ledger entry must survive even though
// nothing else changed.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for assignment attempts.
// Requires a UoWFactory for coordinating updates across all three stores.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one assignment attempt.
//
// Returns an error when the order does not exist, is not pending, or when
// infrastructure fails; returns a Failed result when no eligible partner is
// available.
func (h AssignOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrderCommand,
) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AssignmentResult{}, err
	}

	if ord.Status() != order.Pending {
		return AssignmentResult{}, fmt.Errorf("%w: order %s is %s",
			ErrOrderIsNotPending, ord.ID(), ord.Status())
	}

	partners, err := partnerRepo.GetAllEligible(ctx, ord.Area())
	if err != nil {
		return AssignmentResult{}, err
	}

	assigned, err := services.NewAssignmentService().Assign(ord, partners)
	if errors.Is(err, services.ErrPartnerNotFound) {
		// The attempt transaction holds no changes at this point; roll it
		// back and record the failure separately so the ledger entry is
		// never lost to a later rollback.
		_ = uow.Rollback(ctx)
		return h.recordFailure(ctx, ord.ID())
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	entry, err := assignment.NewSuccessAssignment(ord.ID(), assigned.ID())
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return AssignmentResult{}, err
	}
	if err = partnerRepo.Update(ctx, assigned); err != nil {
		return AssignmentResult{}, err
	}
	if err = uow.AssignmentRepository().Add(ctx, entry); err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	partnerID := assigned.ID()
	return AssignmentResult{
		OrderID:   ord.ID(),
		PartnerID: &partnerID,
		Status:    assignment.Success,
	}, nil
}

func (h AssignOrderCommandHandler) recordFailure(
	ctx context.Context,
	orderID kernel.UUID,
) (AssignmentResult, error) {
	entry, err := assignment.NewFailedAssignment(orderID, assignment.ReasonNoAvailablePartner)
	if err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssignmentRepository().Add(ctx, entry); err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return AssignmentResult{
		OrderID: orderID,
		Status:  assignment.Failed,
		Reason:  assignment.ReasonNoAvailablePartner,
	}, nil
}
