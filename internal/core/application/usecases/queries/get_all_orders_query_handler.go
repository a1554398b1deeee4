package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders, newest first by
// scheduled time. Order lines are fetched in a second pass and folded into
// their orders.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_name,
			customer_phone,
			customer_address,
			area,
			scheduled_for,
			total_amount,
			status,
			partner_id
		FROM orders
		ORDER BY scheduled_for DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id uuid.UUID
		var partnerID *uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.CustomerAddress,
			&resp.Area,
			&resp.ScheduledFor,
			&resp.TotalAmount,
			&status,
			&partnerID,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()

		if partnerID != nil {
			pID, pErr := kernel.UUIDFromBytes((*partnerID)[:])
			if pErr != nil {
				return nil, pErr
			}
			resp.PartnerID = &pID
		}

		resp.Items = make([]OrderItemResponse, 0)
		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetAllOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetAllOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity, price
		FROM order_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item OrderItemResponse

		if err = rows.Scan(&orderID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
