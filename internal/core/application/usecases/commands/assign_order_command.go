package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand triggers a single assignment attempt for a pending
// order. The attempt either binds the least loaded eligible partner to the
// order or records a failed ledger entry with the cause.
//
// Example:
//
//	cmd, _ := NewAssignOrderCommand(orderID)
//	handler := NewAssignOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("assignment attempt did not run: %v", err)
//	    return
//	}
//	if result.Status == assignment.Failed {
//	    log.Printf("order stays pending: %s", result.Reason)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to attempt assignment of one order.
func NewAssignOrderCommand(orderID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
