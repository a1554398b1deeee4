// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the partner domain aggregate, handling
// the conversion between domain entities and database representations.
package partnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// Maps partner domain entities to relational database tables; coverage areas
// live in a child table so eligibility filtering can run in SQL.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string    `gorm:"type:varchar(32);not null"`
	Status          int       `gorm:"not null;index"`
	CurrentLoad     int       `gorm:"type:int;not null"`
	ShiftStart      string    `gorm:"type:varchar(5);not null"`
	ShiftEnd        string    `gorm:"type:varchar(5);not null"`
	Rating          float64   `gorm:"not null"`
	CompletedOrders int       `gorm:"type:int;not null"`
	CancelledOrders int       `gorm:"type:int;not null"`
	Areas           []AreaDTO `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners".
func (PartnerDTO) TableName() string {
	return "partners"
}

// AreaDTO represents one coverage area of a partner.
type AreaDTO struct {
	ID        uint      `gorm:"primaryKey"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
}

// TableName specifies the database table name for coverage area entities.
func (AreaDTO) TableName() string {
	return "partner_areas"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	partnerID := aggregate.ID().Bytes()

	areas := make([]AreaDTO, 0, len(aggregate.Areas()))
	for _, area := range aggregate.Areas() {
		areas = append(areas, AreaDTO{
			PartnerID: partnerID,
			Name:      area,
		})
	}

	return PartnerDTO{
		ID:              partnerID,
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		Status:          int(aggregate.Status()),
		CurrentLoad:     aggregate.CurrentLoad(),
		ShiftStart:      aggregate.Shift().Start(),
		ShiftEnd:        aggregate.Shift().End(),
		Rating:          aggregate.Metrics().Rating(),
		CompletedOrders: aggregate.Metrics().CompletedOrders(),
		CancelledOrders: aggregate.Metrics().CancelledOrders(),
		Areas:           areas,
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the complete aggregate including load and metrics using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shift, err := partner.NewShift(dto.ShiftStart, dto.ShiftEnd)
	if err != nil {
		return nil, err
	}

	metrics, err := partner.NewMetrics(dto.Rating, dto.CompletedOrders, dto.CancelledOrders)
	if err != nil {
		return nil, err
	}

	areas := make([]string, 0, len(dto.Areas))
	for _, area := range dto.Areas {
		areas = append(areas, area.Name)
	}

	return partner.RestorePartner(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		partner.Status(dto.Status),
		dto.CurrentLoad,
		areas,
		shift,
		metrics,
	)
}
