package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a delivery order. It manages the order
// lifecycle from creation through partner assignment to delivery.
//
// Invariants:
//   - the order number is required and immutable after creation
//   - the service area is the sole matching key against partner coverage
//   - status transitions follow the table defined on Status
//   - a partner reference exists exactly while the order is assigned or
//     further along the lifecycle
type Order struct {
	id           kernel.UUID
	orderNumber  string
	customer     Customer
	area         string
	items        []Item
	scheduledFor time.Time
	totalAmount  float64
	status       Status

	// partnerID references the assigned delivery partner, nil while pending.
	partnerID *kernel.UUID

	isConstructed bool
}

// NewOrder creates a new Order in pending status with validation of all
// required fields. This is the only way to create a fresh order.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area string,
	items []Item,
	scheduledFor time.Time,
	totalAmount float64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomer(customer),
		o.setArea(area),
		o.setItems(items),
		o.setScheduledFor(scheduledFor),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. In addition to field
// validation it checks that the stored status is a valid enum member and that
// the partner reference is consistent with the status.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	area string,
	items []Item,
	scheduledFor time.Time,
	totalAmount float64,
	status Status,
	partnerID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customer, area, items, scheduledFor, totalAmount)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidatePartnerReference(partnerID != nil); err != nil {
		return nil, err
	}
	if partnerID != nil {
		if err = partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.partnerID = partnerID
	return o, nil
}

// Validate ensures the Order was constructed via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Customer returns the customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Area returns the service area used to match partner coverage.
func (o *Order) Area() string {
	return o.area
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ScheduledFor returns the time the order is expected to be serviced.
func (o *Order) ScheduledFor() time.Time {
	return o.scheduledFor
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Partner returns the assigned partner's ID, or nil if the order is
// unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// Assign attaches a delivery partner to a pending order and moves it to
// assigned status. Assigning an order that is not pending is a validation
// error; the caller is expected to only feed pending orders to the engine.
func (o *Order) Assign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	return nil
}

// Unassign reverts an assigned order to pending and clears the partner
// reference. Returns the previously assigned partner's ID so the caller can
// release that partner's load.
func (o *Order) Unassign() (*kernel.UUID, error) {
	newStatus, err := o.status.TransitionTo(Pending)
	if err != nil {
		return nil, err
	}

	released := o.partnerID
	o.status = newStatus
	o.partnerID = nil
	return released, nil
}

// MarkPicked records that the assigned partner collected the order.
func (o *Order) MarkPicked() error {
	newStatus, err := o.status.TransitionTo(Picked)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered completes the order. The partner reference is kept for audit;
// releasing the partner's load is the caller's responsibility.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	o.area = area
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setScheduledFor(scheduledFor time.Time) error {
	if scheduledFor.IsZero() {
		return errs.NewValueIsRequiredError("scheduledFor")
	}
	o.scheduledFor = scheduledFor
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%v is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}
