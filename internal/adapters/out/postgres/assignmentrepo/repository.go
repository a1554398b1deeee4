package assignmentrepo

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment ledger repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a ledger entry to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAll retrieves all ledger entries, newest first.
func (r *GormAssignmentRepository) GetAll(ctx context.Context) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRecent retrieves the most recent ledger entries up to limit.
func (r *GormAssignmentRepository) GetRecent(ctx context.Context, limit int) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	entries := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
