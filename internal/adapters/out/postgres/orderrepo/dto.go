// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, area and partner assignment.
type OrderDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderNumber  string      `gorm:"type:varchar(64);not null;uniqueIndex"`
	Customer     CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Area         string      `gorm:"type:varchar(255);not null;index"`
	ScheduledFor time.Time   `gorm:"not null;index"`
	TotalAmount  float64     `gorm:"not null"`
	Status       int         `gorm:"not null;index"`
	PartnerID    *uuid.UUID  `gorm:"type:uuid;index"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"`
	Items        []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact details within the order table.
type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
	Address string `gorm:"type:varchar(512);not null"`
}

// ItemDTO represents the database structure for persisting order lines.
// Links to the order via foreign key; lines are immutable once written.
type ItemDTO struct {
	ID       uint      `gorm:"primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"type:int;not null"`
	Price    float64   `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional partner assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var partnerID *uuid.UUID
	if id := aggregate.Partner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  orderID,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
		},
		Area:         aggregate.Area(),
		ScheduledFor: aggregate.ScheduledFor(),
		TotalAmount:  aggregate.TotalAmount(),
		Status:       int(aggregate.Status()),
		PartnerID:    partnerID,
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and partner assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := order.NewItem(itemDto.Name, itemDto.Quantity, itemDto.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customer,
		dto.Area,
		items,
		dto.ScheduledFor,
		dto.TotalAmount,
		order.Status(dto.Status),
		partnerID,
	)
}
