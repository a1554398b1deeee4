package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery assembles the operational overview: order and partner
// counts, revenue, the latest ledger entries and map points for areas with
// orders in flight.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query to assemble the dashboard.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// PartnerStatusCounts breaks the partner directory down by status.
type PartnerStatusCounts struct {
	Active   int
	Inactive int
}

// RecentAssignmentResponse is one of the latest ledger entries.
type RecentAssignmentResponse struct {
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	Status    string
	Reason    string
	Timestamp time.Time
}

// MapPointResponse is a geocoded service area with its in-flight order count.
type MapPointResponse struct {
	Area   string
	Lat    float64
	Lng    float64
	Orders int
}

// GetDashboardQueryResponse represents the assembled dashboard.
type GetDashboardQueryResponse struct {
	// ActiveOrders counts orders that are pending, assigned or picked.
	ActiveOrders int

	// AvailablePartners counts active partners under capacity.
	AvailablePartners int

	// CompletedOrders counts delivered orders.
	CompletedOrders int

	// TotalRevenue sums the totals of delivered orders.
	TotalRevenue float64

	PartnerStatus     PartnerStatusCounts
	RecentAssignments []RecentAssignmentResponse
	MapPoints         []MapPointResponse
}
