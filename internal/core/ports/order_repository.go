// Package ports defines repository and gateway interfaces for the dispatch
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and assignment state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders in pending status ordered by their
	// scheduled time, earliest first. Used by the batch runner so orders are
	// attempted in schedule order.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAll retrieves all orders, newest first by scheduled time.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
