package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order through its
// lifecycle: picked up, delivered, or back to pending. Moving an order to
// assigned status is reserved for the assignment engine and rejected here.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to update an order's status.
// The status is supplied in its wire form ("pending", "picked", "delivered").
func NewUpdateOrderStatusCommand(orderID kernel.UUID, newStatus string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.orderID = orderID

	parsed, err := order.StatusFromString(newStatus)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.newStatus = parsed

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}
