package http

import (
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	Area            string             `json:"area"`
	Items           []OrderItemPayload `json:"items"`
	ScheduledFor    time.Time          `json:"scheduledFor"`
	TotalAmount     float64            `json:"totalAmount"`
}

// OrderItemPayload is one order line on the wire.
type OrderItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse is one order in list responses.
type OrderResponse struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	Area            string             `json:"area"`
	Items           []OrderItemPayload `json:"items"`
	ScheduledFor    time.Time          `json:"scheduledFor"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          string             `json:"status"`
	PartnerID       *string            `json:"partnerId,omitempty"`
}

// CreatePartnerRequest is the body of POST /api/v1/partners.
type CreatePartnerRequest struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Areas []string     `json:"areas"`
	Shift ShiftPayload `json:"shift"`
}

// UpdatePartnerRequest is the body of PUT /api/v1/partners/:id.
type UpdatePartnerRequest struct {
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Areas  []string     `json:"areas"`
	Shift  ShiftPayload `json:"shift"`
	Status string       `json:"status"`
}

// ShiftPayload is a partner working window on the wire, "HH:MM" boundaries.
type ShiftPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PartnerResponse is one partner in list responses.
type PartnerResponse struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Status          string       `json:"status"`
	CurrentLoad     int          `json:"currentLoad"`
	Areas           []string     `json:"areas"`
	Shift           ShiftPayload `json:"shift"`
	Rating          float64      `json:"rating"`
	CompletedOrders int          `json:"completedOrders"`
	CancelledOrders int          `json:"cancelledOrders"`
}

// UpdateOrderStatusRequest is the body of PUT /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/assign.
type AssignOrderRequest struct {
	OrderID string `json:"orderId"`
}

// AssignmentResultResponse reports the outcome of one assignment attempt.
type AssignmentResultResponse struct {
	OrderID   string  `json:"orderId"`
	PartnerID *string `json:"partnerId,omitempty"`
	Status    string  `json:"status"`
	Reason    string  `json:"reason,omitempty"`
}

// RunAssignmentsResponse summarizes a batch run.
type RunAssignmentsResponse struct {
	Processed int                        `json:"processed"`
	Succeeded int                        `json:"succeeded"`
	Failed    int                        `json:"failed"`
	Errored   int                        `json:"errored"`
	Results   []AssignmentResultResponse `json:"results"`
}

// MetricsResponse is the body of GET /api/v1/assignments/metrics.
type MetricsResponse struct {
	TotalAssigned  int                     `json:"totalAssigned"`
	SuccessRate    float64                 `json:"successRate"`
	AverageTimeMs  float64                 `json:"averageTimeMs"`
	FailureReasons []FailureReasonResponse `json:"failureReasons"`
}

// FailureReasonResponse is one failure cause with its occurrence count.
type FailureReasonResponse struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// DashboardResponse is the body of GET /api/v1/dashboard.
type DashboardResponse struct {
	ActiveOrders      int                  `json:"activeOrders"`
	AvailablePartners int                  `json:"availablePartners"`
	CompletedOrders   int                  `json:"completedOrders"`
	TotalRevenue      float64              `json:"totalRevenue"`
	PartnerStatus     PartnerStatusPayload `json:"partnerStatus"`
	RecentAssignments []RecentAssignment   `json:"recentAssignments"`
	MapPoints         []MapPoint           `json:"mapPoints"`
}

// PartnerStatusPayload breaks the partner directory down by status.
type PartnerStatusPayload struct {
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// RecentAssignment is one of the latest ledger entries on the wire.
type RecentAssignment struct {
	OrderID   string    `json:"orderId"`
	PartnerID *string   `json:"partnerId,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MapPoint is a geocoded service area with its in-flight order count.
type MapPoint struct {
	Area   string  `json:"area"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Orders int     `json:"orders"`
}

func toOrderResponse(o queries.GetAllOrdersQueryResponse) OrderResponse {
	items := make([]OrderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	var partnerID *string
	if o.PartnerID != nil {
		s := o.PartnerID.String()
		partnerID = &s
	}

	return OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		Area:            o.Area,
		Items:           items,
		ScheduledFor:    o.ScheduledFor,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PartnerID:       partnerID,
	}
}

func toPartnerResponse(p queries.GetAllPartnersQueryResponse) PartnerResponse {
	return PartnerResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Status:      p.Status,
		CurrentLoad: p.CurrentLoad,
		Areas:       p.Areas,
		Shift: ShiftPayload{
			Start: p.ShiftStart,
			End:   p.ShiftEnd,
		},
		Rating:          p.Rating,
		CompletedOrders: p.CompletedOrders,
		CancelledOrders: p.CancelledOrders,
	}
}

func toMetricsResponse(m queries.GetAssignmentMetricsQueryResponse) MetricsResponse {
	reasons := make([]FailureReasonResponse, 0, len(m.FailureReasons))
	for _, r := range m.FailureReasons {
		reasons = append(reasons, FailureReasonResponse{Reason: r.Reason, Count: r.Count})
	}

	return MetricsResponse{
		TotalAssigned:  m.TotalAssigned,
		SuccessRate:    m.SuccessRate,
		AverageTimeMs:  m.AverageTimeMs,
		FailureReasons: reasons,
	}
}

func toDashboardResponse(d queries.GetDashboardQueryResponse) DashboardResponse {
	recent := make([]RecentAssignment, 0, len(d.RecentAssignments))
	for _, entry := range d.RecentAssignments {
		var partnerID *string
		if entry.PartnerID != nil {
			s := entry.PartnerID.String()
			partnerID = &s
		}
		recent = append(recent, RecentAssignment{
			OrderID:   entry.OrderID.String(),
			PartnerID: partnerID,
			Status:    entry.Status,
			Reason:    entry.Reason,
			Timestamp: entry.Timestamp,
		})
	}

	points := make([]MapPoint, 0, len(d.MapPoints))
	for _, p := range d.MapPoints {
		points = append(points, MapPoint{
			Area:   p.Area,
			Lat:    p.Lat,
			Lng:    p.Lng,
			Orders: p.Orders,
		})
	}

	return DashboardResponse{
		ActiveOrders:      d.ActiveOrders,
		AvailablePartners: d.AvailablePartners,
		CompletedOrders:   d.CompletedOrders,
		TotalRevenue:      d.TotalRevenue,
		PartnerStatus: PartnerStatusPayload{
			Active:   d.PartnerStatus.Active,
			Inactive: d.PartnerStatus.Inactive,
		},
		RecentAssignments: recent,
		MapPoints:         points,
	}
}

func toAssignmentResultResponse(r commands.AssignmentResult) AssignmentResultResponse {
	var partnerID *string
	if r.PartnerID != nil {
		s := r.PartnerID.String()
		partnerID = &s
	}

	return AssignmentResultResponse{
		OrderID:   r.OrderID.String(),
		PartnerID: partnerID,
		Status:    r.Status.String(),
		Reason:    r.Reason,
	}
}
