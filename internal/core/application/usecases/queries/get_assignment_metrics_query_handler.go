package queries

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"

	"gorm.io/gorm"
)

// GetAssignmentMetricsQueryHandler aggregates the assignment ledger in SQL
// and folds the grouped rows into the metrics read model.
type GetAssignmentMetricsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentMetricsQueryHandler creates a handler for metrics queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentMetricsQueryHandler(db *gorm.DB) GetAssignmentMetricsQueryHandler {
	return GetAssignmentMetricsQueryHandler{db: db}
}

// attemptGroup is one (status, reason) bucket of the ledger.
type attemptGroup struct {
	status int
	reason string
	count  int
}

// Handle executes the metrics aggregation.
//
// The attempt counts come from a grouped scan over the ledger; the average
// assignment time joins successful entries back to their orders and measures
// entry timestamp minus order creation time.
func (h GetAssignmentMetricsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentMetricsQuery,
) (GetAssignmentMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	groups, err := h.attemptGroups(ctx)
	if err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	avgMs, err := h.averageAssignmentTimeMs(ctx)
	if err != nil {
		return GetAssignmentMetricsQueryResponse{}, err
	}

	return buildMetricsResponse(groups, avgMs), nil
}

func (h GetAssignmentMetricsQueryHandler) attemptGroups(ctx context.Context) ([]attemptGroup, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, reason, COUNT(*)
		FROM assignments
		GROUP BY status, reason
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []attemptGroup
	for rows.Next() {
		var g attemptGroup
		if err = rows.Scan(&g.status, &g.reason, &g.count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (h GetAssignmentMetricsQueryHandler) averageAssignmentTimeMs(ctx context.Context) (float64, error) {
	var avgMs float64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (a.timestamp - o.created_at)) * 1000), 0)
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.status = ?
	`, int(assignment.Success)).Scan(&avgMs).Error
	return avgMs, err
}

// buildMetricsResponse folds the grouped attempt counts into the read model.
func buildMetricsResponse(groups []attemptGroup, avgMs float64) GetAssignmentMetricsQueryResponse {
	resp := GetAssignmentMetricsQueryResponse{
		AverageTimeMs:  avgMs,
		FailureReasons: make([]FailureReasonCount, 0),
	}

	succeeded := 0
	for _, g := range groups {
		resp.TotalAssigned += g.count
		switch assignment.Status(g.status) {
		case assignment.Success:
			succeeded += g.count
		case assignment.Failed:
			resp.FailureReasons = append(resp.FailureReasons, FailureReasonCount{
				Reason: g.reason,
				Count:  g.count,
			})
		}
	}

	if resp.TotalAssigned > 0 {
		resp.SuccessRate = float64(succeeded) / float64(resp.TotalAssigned) * 100
	}

	return resp
}
