package queries

import (
	"context"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// recentAssignmentsLimit caps the ledger entries shown on the dashboard.
const recentAssignmentsLimit = 5

// mapPointsLimit caps how many areas are geocoded per dashboard request.
const mapPointsLimit = 50

// geocodeConcurrency bounds the parallel geocoding calls so the dashboard
// does not flood the external service.
const geocodeConcurrency = 8

// GetDashboardQueryHandler assembles the operational dashboard from the
// database and the geocoding gateway. Counts and revenue come from SQL
// aggregates; map points are geocoded concurrently per area, and areas the
// geocoder cannot resolve are dropped rather than failing the dashboard.
type GetDashboardQueryHandler struct {
	db       *gorm.DB
	geocoder ports.Geocoder
	logger   *slog.Logger
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB, geocoder ports.Geocoder, logger *slog.Logger) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		db:       db,
		geocoder: geocoder,
		logger:   logger.With("component", "dashboard_query"),
	}
}

// Handle executes the dashboard assembly.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var resp GetDashboardQueryResponse

	if err := h.orderCounts(ctx, &resp); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if err := h.partnerCounts(ctx, &resp); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	recent, err := h.recentAssignments(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	resp.RecentAssignments = recent

	points, err := h.mapPoints(ctx)
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}
	resp.MapPoints = points

	return resp, nil
}

func (h GetDashboardQueryHandler) orderCounts(ctx context.Context, resp *GetDashboardQueryResponse) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status IN (?, ?, ?)),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0)
		FROM orders
	`,
		int(order.Pending), int(order.Assigned), int(order.Picked),
		int(order.Delivered),
		int(order.Delivered),
	).Row()

	return row.Scan(&resp.ActiveOrders, &resp.CompletedOrders, &resp.TotalRevenue)
}

func (h GetDashboardQueryHandler) partnerCounts(ctx context.Context, resp *GetDashboardQueryResponse) error {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ? AND current_load < ?)
		FROM partners
	`,
		int(partner.Active),
		int(partner.Inactive),
		int(partner.Active), partner.MaxCapacity,
	).Row()

	return row.Scan(
		&resp.PartnerStatus.Active,
		&resp.PartnerStatus.Inactive,
		&resp.AvailablePartners,
	)
}

func (h GetDashboardQueryHandler) recentAssignments(ctx context.Context) ([]RecentAssignmentResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_id, partner_id, status, reason, timestamp
		FROM assignments
		ORDER BY timestamp DESC
		LIMIT ?
	`, recentAssignmentsLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recent := make([]RecentAssignmentResponse, 0, recentAssignmentsLimit)
	for rows.Next() {
		var entry RecentAssignmentResponse
		var orderID uuid.UUID
		var partnerID *uuid.UUID
		var status int

		if err = rows.Scan(&orderID, &partnerID, &status, &entry.Reason, &entry.Timestamp); err != nil {
			return nil, err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.OrderID = oID
		entry.Status = assignment.Status(status).String()

		if partnerID != nil {
			pID, pErr := kernel.UUIDFromBytes((*partnerID)[:])
			if pErr != nil {
				return nil, pErr
			}
			entry.PartnerID = &pID
		}

		recent = append(recent, entry)
	}

	return recent, rows.Err()
}

// mapPoints geocodes every area with orders in flight, fanning the lookups
// out across a bounded worker group.
func (h GetDashboardQueryHandler) mapPoints(ctx context.Context) ([]MapPointResponse, error) {
	areas, err := h.activeAreas(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		points = make([]MapPointResponse, 0, len(areas))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(geocodeConcurrency)

	for _, area := range areas {
		g.Go(func() error {
			point, geoErr := h.geocoder.Geocode(gctx, area.name)
			if geoErr != nil {
				h.logger.WarnContext(gctx, "Geocoding failed, dropping map point",
					"area", area.name, "error", geoErr)
				return nil
			}

			mu.Lock()
			points = append(points, MapPointResponse{
				Area:   area.name,
				Lat:    point.Lat,
				Lng:    point.Lng,
				Orders: area.orders,
			})
			mu.Unlock()
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

type activeArea struct {
	name   string
	orders int
}

func (h GetDashboardQueryHandler) activeAreas(ctx context.Context) ([]activeArea, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT area, COUNT(*)
		FROM orders
		WHERE status IN (?, ?, ?)
		GROUP BY area
		ORDER BY COUNT(*) DESC
		LIMIT ?
	`,
		int(order.Pending), int(order.Assigned), int(order.Picked),
		mapPointsLimit,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []activeArea
	for rows.Next() {
		var area activeArea
		if err = rows.Scan(&area.name, &area.orders); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	return areas, rows.Err()
}
