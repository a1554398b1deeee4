package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllPartnersQueryIsNotConstructed = errors.New(
	"GetAllPartnersQuery must be created via NewGetAllPartnersQuery constructor",
)

// GetAllPartnersQuery retrieves all partners with their coverage areas,
// load counters and metrics, sorted by name.
type GetAllPartnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPartnersQuery creates a query to retrieve all partners.
func NewGetAllPartnersQuery() GetAllPartnersQuery {
	return GetAllPartnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPartnersQueryIsNotConstructed)
}

// GetAllPartnersQueryResponse represents one partner in the read model.
type GetAllPartnersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	Status          string
	CurrentLoad     int
	Areas           []string
	ShiftStart      string
	ShiftEnd        string
	Rating          float64
	CompletedOrders int
	CancelledOrders int
}
