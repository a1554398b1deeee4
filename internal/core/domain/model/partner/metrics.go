package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

const (
	ratingMin = 0
	ratingMax = 5
)

// Metrics holds per-partner delivery counters. Only completedOrders is
// mutated by the core, on delivery completion; rating and cancelledOrders are
// maintained by administrative updates.
type Metrics struct {
	rating          float64
	completedOrders int
	cancelledOrders int
}

// NewMetrics creates validated Metrics. Rating must be within [0, 5] and the
// counters non-negative.
func NewMetrics(rating float64, completedOrders, cancelledOrders int) (Metrics, error) {
	if rating < ratingMin || rating > ratingMax {
		return Metrics{}, errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	if completedOrders < 0 {
		return Metrics{}, errs.NewValueIsInvalidErrorWithCause(
			"completedOrders", fmt.Errorf("%d is negative", completedOrders))
	}
	if cancelledOrders < 0 {
		return Metrics{}, errs.NewValueIsInvalidErrorWithCause(
			"cancelledOrders", fmt.Errorf("%d is negative", cancelledOrders))
	}

	return Metrics{
		rating:          rating,
		completedOrders: completedOrders,
		cancelledOrders: cancelledOrders,
	}, nil
}

// Rating returns the partner's rating.
func (m Metrics) Rating() float64 {
	return m.rating
}

// CompletedOrders returns the number of completed deliveries.
func (m Metrics) CompletedOrders() int {
	return m.completedOrders
}

// CancelledOrders returns the number of cancelled deliveries.
func (m Metrics) CancelledOrders() int {
	return m.cancelledOrders
}

// RecordCompletion returns a copy of the metrics with completedOrders
// incremented by one.
func (m Metrics) RecordCompletion() Metrics {
	m.completedOrders++
	return m
}
