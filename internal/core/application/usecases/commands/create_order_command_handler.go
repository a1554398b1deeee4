package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders always start in pending status with no partner attached.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and ready for partner assignment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate from the command data and persists it in a
// transaction so the order is fully stored or not stored at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress())
	if err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, itemErr := order.NewItem(line.Name, line.Quantity, line.Price)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		customer,
		cmd.Area(),
		items,
		cmd.ScheduledFor(),
		cmd.TotalAmount(),
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

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
