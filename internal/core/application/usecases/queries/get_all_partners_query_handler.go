package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPartnersQueryHandler retrieves all partners from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPartnersQueryHandler creates a handler for partner retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPartnersQueryHandler(db *gorm.DB) GetAllPartnersQueryHandler {
	return GetAllPartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all partners sorted by name.
// Coverage areas are fetched in a second pass and folded into their partners.
func (h GetAllPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPartnersQuery,
) ([]GetAllPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAllPartnersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			status,
			current_load,
			shift_start,
			shift_end,
			rating,
			completed_orders,
			cancelled_orders
		FROM partners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllPartnersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&status,
			&resp.CurrentLoad,
			&resp.ShiftStart,
			&resp.ShiftEnd,
			&resp.Rating,
			&resp.CompletedOrders,
			&resp.CancelledOrders,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = partnerID
		resp.Status = partner.Status(status).String()
		resp.Areas = make([]string, 0)

		index[id] = len(partners)
		partners = append(partners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachAreas(ctx, partners, index); err != nil {
		return nil, err
	}

	return partners, nil
}

func (h GetAllPartnersQueryHandler) attachAreas(
	ctx context.Context,
	partners []GetAllPartnersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT partner_id, name
		FROM partner_areas
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var partnerID uuid.UUID
		var area string

		if err = rows.Scan(&partnerID, &area); err != nil {
			return err
		}

		if i, ok := index[partnerID]; ok {
			partners[i].Areas = append(partners[i].Areas, area)
		}
	}

	return rows.Err()
}
