package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAssignmentMetricsQueryIsNotConstructed = errors.New(
	"GetAssignmentMetricsQuery must be created via NewGetAssignmentMetricsQuery constructor",
)

// GetAssignmentMetricsQuery aggregates the assignment ledger into engine
// performance metrics.
type GetAssignmentMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAssignmentMetricsQuery creates a query to aggregate the ledger.
func NewGetAssignmentMetricsQuery() GetAssignmentMetricsQuery {
	return GetAssignmentMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentMetricsQueryIsNotConstructed)
}

// FailureReasonCount is one failure cause and how often it occurred.
type FailureReasonCount struct {
	Reason string
	Count  int
}

// GetAssignmentMetricsQueryResponse represents the aggregated ledger.
// An empty ledger yields all zeroes rather than an error.
type GetAssignmentMetricsQueryResponse struct {
	// TotalAssigned counts every recorded attempt, successful and failed.
	TotalAssigned int

	// SuccessRate is the share of successful attempts in percent, 0 when
	// the ledger is empty.
	SuccessRate float64

	// AverageTimeMs is the mean time from order creation to successful
	// assignment in milliseconds, 0 when no attempt succeeded yet.
	AverageTimeMs float64

	// FailureReasons lists each failure cause with its occurrence count.
	FailureReasons []FailureReasonCount
}
