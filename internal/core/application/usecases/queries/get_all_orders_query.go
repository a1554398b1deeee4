// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves all orders with their lines and assignment
// state, newest first by scheduled time.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderItemResponse is one order line in the read model.
type OrderItemResponse struct {
	Name     string
	Quantity int
	Price    float64
}

// GetAllOrdersQueryResponse represents one order in the read model.
type GetAllOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Area            string
	Items           []OrderItemResponse
	ScheduledFor    time.Time
	TotalAmount     float64
	Status          string
	PartnerID       *kernel.UUID
}
