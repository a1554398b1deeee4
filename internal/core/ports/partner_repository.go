package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates.
// Provides methods for storing, retrieving, and querying partner entities
// with their load counters, coverage areas and metrics.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The partner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// Remove deletes a partner aggregate from storage.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAllEligible retrieves partners that are active, under capacity and
	// cover the given area. The filter runs in the store so the engine never
	// loads partners it cannot use.
	GetAllEligible(ctx context.Context, area string) ([]*partner.Partner, error)

	// GetAll retrieves all partners.
	GetAll(ctx context.Context) ([]*partner.Partner, error)
}
