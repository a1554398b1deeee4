package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
)

// AssignmentRepository defines the persistence contract for the assignment
// ledger. The ledger is append-only: entries are added and read, never
// updated or deleted.
type AssignmentRepository interface {
	// Add appends a ledger entry to storage.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// GetAll retrieves all ledger entries, newest first.
	GetAll(ctx context.Context) ([]*assignment.Assignment, error)

	// GetRecent retrieves the most recent ledger entries up to limit.
	GetRecent(ctx context.Context, limit int) ([]*assignment.Assignment, error)
}
