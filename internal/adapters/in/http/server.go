// Package http exposes the application use cases over an echo HTTP API.
// Handlers are a thin serialization layer: bind the request, build a command
// or query, dispatch it and translate the outcome to a JSON response.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	runAssignmentsHandler    commands.RunAssignmentsCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	updatePartnerHandler     commands.UpdatePartnerCommandHandler
	removePartnerHandler     commands.RemovePartnerCommandHandler

	getAllOrdersHandler         queries.GetAllOrdersQueryHandler
	getAllPartnersHandler       queries.GetAllPartnersQueryHandler
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler
	getDashboardHandler         queries.GetDashboardQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	runAssignmentsHandler commands.RunAssignmentsCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	updatePartnerHandler commands.UpdatePartnerCommandHandler,
	removePartnerHandler commands.RemovePartnerCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllPartnersHandler queries.GetAllPartnersQueryHandler,
	getAssignmentMetricsHandler queries.GetAssignmentMetricsQueryHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignOrderHandler:          assignOrderHandler,
		runAssignmentsHandler:       runAssignmentsHandler,
		createPartnerHandler:        createPartnerHandler,
		updatePartnerHandler:        updatePartnerHandler,
		removePartnerHandler:        removePartnerHandler,
		getAllOrdersHandler:         getAllOrdersHandler,
		getAllPartnersHandler:       getAllPartnersHandler,
		getAssignmentMetricsHandler: getAssignmentMetricsHandler,
		getDashboardHandler:         getDashboardHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/assign", s.AssignOrder)

	v1.POST("/partners", s.CreatePartner)
	v1.GET("/partners", s.GetPartners)
	v1.PUT("/partners/:id", s.UpdatePartner)
	v1.DELETE("/partners/:id", s.RemovePartner)

	v1.POST("/assignments/run", s.RunAssignments)
	v1.GET("/assignments/metrics", s.GetAssignmentMetrics)

	v1.GET("/dashboard", s.GetDashboard)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		req.OrderNumber,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerAddress,
		req.Area,
		items,
		req.ScheduledFor,
		req.TotalAmount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOrder handles POST /api/v1/orders/assign - runs the assignment engine
// for a single order. A failed attempt is a recorded outcome, not a server
// error, and is reported with the attempt payload.
func (s *Server) AssignOrder(ctx echo.Context) error {
	var req AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAssignOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	status := http.StatusOK
	if result.Status == assignment.Failed {
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, toAssignmentResultResponse(result))
}

// RunAssignments handles POST /api/v1/assignments/run - processes every
// pending order through the assignment engine.
func (s *Server) RunAssignments(ctx echo.Context) error {
	cmd := commands.NewRunAssignmentsCommand()

	result, err := s.runAssignmentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	results := make([]AssignmentResultResponse, 0, len(result.Results))
	for _, r := range result.Results {
		results = append(results, toAssignmentResultResponse(r))
	}

	return ctx.JSON(http.StatusOK, RunAssignmentsResponse{
		Processed: result.Processed,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Errored:   result.Errored,
		Results:   results,
	})
}

// CreatePartner handles POST /api/v1/partners - registers a new partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req CreatePartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(
		partnerID,
		req.Name,
		req.Email,
		req.Phone,
		req.Areas,
		req.Shift.Start,
		req.Shift.End,
	)
	if err != nil {
		return badRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": partnerID.String()})
}

// GetPartners handles GET /api/v1/partners - retrieves all partners.
func (s *Server) GetPartners(ctx echo.Context) error {
	query := queries.NewGetAllPartnersQuery()

	partners, err := s.getAllPartnersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]PartnerResponse, 0, len(partners))
	for _, p := range partners {
		response = append(response, toPartnerResponse(p))
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdatePartner handles PUT /api/v1/partners/:id - updates partner profile,
// coverage, shift and status.
func (s *Server) UpdatePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	var req UpdatePartnerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePartnerCommand(
		partnerID,
		req.Name,
		req.Email,
		req.Phone,
		req.Areas,
		req.Shift.Start,
		req.Shift.End,
		req.Status,
	)
	if err != nil {
		return badRequest(ctx, "Invalid partner data: "+err.Error())
	}

	if err = s.updatePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePartner handles DELETE /api/v1/partners/:id - removes a partner
// without in-flight orders.
func (s *Server) RemovePartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id")
	}

	cmd, err := commands.NewRemovePartnerCommand(partnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	if err = s.removePartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignmentMetrics handles GET /api/v1/assignments/metrics - aggregates
// the assignment ledger.
func (s *Server) GetAssignmentMetrics(ctx echo.Context) error {
	query := queries.NewGetAssignmentMetricsQuery()

	metrics, err := s.getAssignmentMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMetricsResponse(metrics))
}

// GetDashboard handles GET /api/v1/dashboard - assembles the operational
// overview.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardQuery()

	dashboard, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorJSON translates use case errors to HTTP responses. Validation failures
// map to 400, missing aggregates to 404, state conflicts to 409, everything
// else to 500.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrOrderIsNotPending),
		errors.Is(err, commands.ErrPartnerHasActiveOrders):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
