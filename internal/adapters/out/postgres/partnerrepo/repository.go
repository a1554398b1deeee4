package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPartnerRepository implements PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner to the database.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.Partner) error {
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

// Update saves an existing partner to the database. The coverage area rows
// are replaced wholesale; area rows carry no identity of their own, so a
// merge would buy nothing.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Email", "Phone", "Status", "CurrentLoad",
			"ShiftStart", "ShiftEnd", "Rating", "CompletedOrders", "CancelledOrders").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("partner_id = ?", dto.ID).
		Delete(&AreaDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Areas) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Areas).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID. The row is locked for update so a concurrent
// transaction cannot read the same load counter before this one commits.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Areas").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a partner by ID. Area rows go with it via the cascade.
func (r *GormPartnerRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PartnerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partner", id.String())
	}

	return nil
}

// GetAllEligible retrieves partners that are active, under capacity and cover
// the given area. Filtering runs in SQL so the engine only loads partners it
// can actually use. The partner rows are locked for update: concurrent
// assignment transactions must serialize per partner or both would act on the
// same load counter.
func (r *GormPartnerRepository) GetAllEligible(ctx context.Context, area string) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "partners"}}).
		Preload("Areas").
		Joins("JOIN partner_areas ON partner_areas.partner_id = partners.id AND partner_areas.name = ?", area).
		Where("partners.status = ? AND partners.current_load < ?",
			int(partner.Active), partner.MaxCapacity).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves all partners sorted by name.
func (r *GormPartnerRepository) GetAll(ctx context.Context) ([]*partner.Partner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).
		Preload("Areas").
		Order("name ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PartnerDTO) ([]*partner.Partner, error) {
	partners := make([]*partner.Partner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}
