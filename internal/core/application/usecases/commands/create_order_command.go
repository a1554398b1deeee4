package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItem is one order line as supplied by the caller. Deep validation of
// quantity and price happens in the domain when the order is built.
type OrderItem struct {
	Name     string
	Quantity int
	Price    float64
}

// CreateOrderCommand represents a request to register a new delivery order.
// Encapsulates the order number, customer contact details, service area,
// order lines and schedule.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-001", "Ravi Kumar",
//	    "+91-98200", "12 Hill Road", "Andheri", items, scheduledFor, 240)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	orderNumber     string
	customerName    string
	customerPhone   string
	customerAddress string
	area            string
	items           []OrderItem
	scheduledFor    time.Time
	totalAmount     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the ID is constructed and the required fields are present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber, customerName, customerPhone, customerAddress, area string,
	items []OrderItem,
	scheduledFor time.Time,
	totalAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomer(customerName, customerPhone, customerAddress),
		cmd.setArea(area),
		cmd.setItems(items),
		cmd.setScheduledFor(scheduledFor),
		cmd.setTotalAmount(totalAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Area returns the service area.
func (c CreateOrderCommand) Area() string {
	return c.area
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []OrderItem {
	return c.items
}

// ScheduledFor returns the time the order should be serviced.
func (c CreateOrderCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

// TotalAmount returns the order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomer(name, phone, address string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	c.customerName = name
	c.customerPhone = phone
	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	c.area = area
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return errs.NewValueIsRequiredError("scheduledFor")
	}
	c.scheduledFor = scheduledFor
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("totalAmount")
	}
	c.totalAmount = totalAmount
	return nil
}
