// Package assignmentrepo provides data transfer objects and mapping functions
// for the assignment ledger. The ledger is append-only, so the repository
// exposes no update or delete operations.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting ledger entries.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartnerID *uuid.UUID `gorm:"type:uuid;index"`
	Status    int        `gorm:"not null;index"`
	Reason    string     `gorm:"type:varchar(255)"`
	Timestamp time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return AssignmentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		PartnerID: partnerID,
		Status:    int(aggregate.Status()),
		Reason:    aggregate.Reason(),
		Timestamp: aggregate.Timestamp(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		partnerID,
		assignment.Status(dto.Status),
		dto.Reason,
		dto.Timestamp,
	)
}
