package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Customer is a value object holding the contact details of the person the
// order is delivered to. All fields are required.
type Customer struct {
	name    string
	phone   string
	address string
}

// NewCustomer creates a validated Customer. Every field must be non-empty.
func NewCustomer(name, phone, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer phone")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer address")
	}

	return Customer{name: name, phone: phone, address: address}, nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c Customer) Address() string {
	return c.address
}

// Validate returns an error for zero-value Customer instances.
func (c Customer) Validate() error {
	if c.name == "" || c.phone == "" || c.address == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	return nil
}

// Item is a single order line. Quantity must be positive and price
// non-negative.
type Item struct {
	name     string
	quantity int
	price    float64
}

// NewItem creates a validated order line.
func NewItem(name string, quantity int, price float64) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item price", fmt.Errorf("%v is negative", price))
	}

	return Item{name: name, quantity: quantity, price: price}, nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Validate returns an error for zero-value Item instances.
func (i Item) Validate() error {
	if i.name == "" {
		return errs.NewValueIsRequiredError("item")
	}
	return nil
}
