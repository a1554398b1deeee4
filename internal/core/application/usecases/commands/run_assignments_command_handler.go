package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// RunAssignmentsResult summarizes one batch run.
type RunAssignmentsResult struct {
	// Processed counts the pending orders picked up by the run.
	Processed int

	// Succeeded counts attempts that assigned a partner.
	Succeeded int

	// Failed counts attempts recorded as failed in the ledger.
	Failed int

	// Errored counts orders whose attempt did not run to completion.
	Errored int

	// Results holds the outcome of every completed attempt.
	Results []AssignmentResult

	// Errors pairs each errored order with its cause.
	Errors []AttemptError
}

// AttemptError records an order whose attempt failed with an infrastructure
// or validation error rather than a ledger-recorded failure.
type AttemptError struct {
	OrderID kernel.UUID
	Err     error
}

// RunAssignmentsCommandHandler processes all pending orders in scheduled
// order. Each order is attempted independently: an error on one order never
// stops the run, and one order's transaction never contains another order's
// changes.
type RunAssignmentsCommandHandler struct {
	uowFactory    UoWFactory
	assignHandler AssignOrderCommandHandler
}

// NewRunAssignmentsCommandHandler creates a handler for batch runs.
func NewRunAssignmentsCommandHandler(uowFactory UoWFactory) RunAssignmentsCommandHandler {
	return RunAssignmentsCommandHandler{
		uowFactory:    uowFactory,
		assignHandler: NewAssignOrderCommandHandler(uowFactory),
	}
}

// Handle executes one batch run.
//
// The pending order list is read first in its own transaction; attempts then
// run one at a time. Returns an error only when the pending list cannot be
// read; per-order problems are reported in the result.
func (h RunAssignmentsCommandHandler) Handle(
	ctx context.Context,
	cmd RunAssignmentsCommand,
) (RunAssignmentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return RunAssignmentsResult{}, err
	}

	orderIDs, err := h.pendingOrderIDs(ctx)
	if err != nil {
		return RunAssignmentsResult{}, err
	}

	result := RunAssignmentsResult{
		Processed: len(orderIDs),
	}

	for _, orderID := range orderIDs {
		assignCmd, cmdErr := NewAssignOrderCommand(orderID)
		if cmdErr != nil {
			result.Errored++
			result.Errors = append(result.Errors, AttemptError{OrderID: orderID, Err: cmdErr})
			continue
		}

		attempt, attemptErr := h.assignHandler.Handle(ctx, assignCmd)
		if attemptErr != nil {
			result.Errored++
			result.Errors = append(result.Errors, AttemptError{OrderID: orderID, Err: attemptErr})
			continue
		}

		if attempt.PartnerID != nil {
			result.Succeeded++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, attempt)
	}

	return result, nil
}

func (h RunAssignmentsCommandHandler) pendingOrderIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(pending))
	for _, ord := range pending {
		orderIDs = append(orderIDs, ord.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}
