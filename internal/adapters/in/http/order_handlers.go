package http

import (
	"net/http"
	"time"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// GeoPointRequest is a latitude/longitude pair on the wire.
type GeoPointRequest struct {
	Lat float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// ContactRequest identifies a party on the order.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// StopRequest is one route stop of an order being placed.
type StopRequest struct {
	Sequence int     `json:"sequence" validate:"required,min=1"`
	Type     string  `json:"type" validate:"required,oneof=pickup dropoff"`
	Address  string  `json:"address" validate:"required"`
	Lat      float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// QuoteRequest prices a prospective route against a delivery service.
type QuoteRequest struct {
	ServiceID string            `json:"serviceId" validate:"required,uuid"`
	Route     []GeoPointRequest `json:"route" validate:"required,min=2,dive"`
}

// QuoteResponse is the priced estimate.
type QuoteResponse struct {
	EstimatedCost   int64   `json:"estimatedCost"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
}

// CalculateQuote handles POST /api/v1/quotes.
func (s *Server) CalculateQuote(ctx echo.Context) error {
	var req QuoteRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	route := make([]kernel.GeoPoint, 0, len(req.Route))
	for _, p := range req.Route {
		point, pointErr := kernel.NewGeoPoint(p.Lat, p.Lng)
		if pointErr != nil {
			return s.writeError(ctx, pointErr)
		}
		route = append(route, point)
	}

	var tenantID *kernel.UUID
	if principal, ok := principalFrom(ctx); ok {
		tenantID = principal.TenantID
	}

	cmd, err := commands.NewCalculateQuoteCommand(serviceID, tenantID, route)
	if err != nil {
		return s.writeError(ctx, err)
	}

	quote, err := s.calculateQuoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, QuoteResponse{
		EstimatedCost:   quote.EstimatedCost,
		TotalDistanceKm: quote.TotalDistanceKm,
	})
}

// CreateOrderRequest places a delivery order. driverId/vehicleId pre-assign
// the order and are only honored on the tenant staff path.
type CreateOrderRequest struct {
	ServiceID string         `json:"serviceId" validate:"required,uuid"`
	Orderer   ContactRequest `json:"orderer" validate:"required"`
	Recipient ContactRequest `json:"recipient" validate:"required"`
	Notes     string         `json:"notes"`
	Stops     []StopRequest  `json:"stops" validate:"required,min=2,dive"`
	DriverID  string         `json:"driverId" validate:"omitempty,uuid"`
	VehicleID string         `json:"vehicleId" validate:"omitempty,uuid"`
}

// CreateOrderResponse reports the placed order's identifiers.
type CreateOrderResponse struct {
	OrderID       string `json:"orderId"`
	TrackingID    string `json:"trackingId"`
	EstimatedCost int64  `json:"estimatedCost"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	stops := make([]commands.StopSpec, 0, len(req.Stops))
	for _, stop := range req.Stops {
		stopType, typeErr := order.StopTypeFromString(stop.Type)
		if typeErr != nil {
			return s.writeError(ctx, typeErr)
		}
		point, pointErr := kernel.NewGeoPoint(stop.Lat, stop.Lng)
		if pointErr != nil {
			return s.writeError(ctx, pointErr)
		}
		stops = append(stops, commands.StopSpec{
			Sequence: stop.Sequence,
			Type:     stopType,
			Address:  stop.Address,
			Point:    point,
		})
	}

	var tenantID, driverID, vehicleID *kernel.UUID
	principal, authenticated := principalFrom(ctx)
	if authenticated {
		tenantID = principal.TenantID
	}

	// Pre-assignment is a staff capability; anonymous customers cannot
	// pick drivers.
	if req.DriverID != "" {
		if !authenticated || !principal.IsTenantStaff() {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "driver pre-assignment requires tenant staff access",
			})
		}
		id, convErr := kernel.UUIDFromString(req.DriverID)
		if convErr != nil {
			return s.writeError(ctx, convErr)
		}
		driverID = &id
	}
	if req.VehicleID != "" {
		id, convErr := kernel.UUIDFromString(req.VehicleID)
		if convErr != nil {
			return s.writeError(ctx, convErr)
		}
		vehicleID = &id
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		tenantID,
		serviceID,
		order.Contact{Name: req.Orderer.Name, Phone: req.Orderer.Phone},
		order.Contact{Name: req.Recipient.Name, Phone: req.Recipient.Phone},
		req.Notes,
		stops,
		driverID,
		vehicleID,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:       result.OrderID.String(),
		TrackingID:    result.TrackingID,
		EstimatedCost: result.EstimatedCost,
	})
}

// AssignOrderRequest dispatches a pending order to a driver.
type AssignOrderRequest struct {
	DriverID  string `json:"driverId" validate:"required,uuid"`
	VehicleID string `json:"vehicleId" validate:"omitempty,uuid"`
}

// AssignOrder handles POST /api/v1/orders/:orderId/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "order assignment requires tenant staff access")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req AssignOrderRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var vehicleID *kernel.UUID
	if req.VehicleID != "" {
		id, convErr := kernel.UUIDFromString(req.VehicleID)
		if convErr != nil {
			return s.writeError(ctx, convErr)
		}
		vehicleID = &id
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, *principal.TenantID, driverID, vehicleID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatusRequest advances the order lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsDriver() {
		return forbidden(ctx, "status updates require driver access")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateOrderStatusRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, *principal.DriverID, next)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"orderId": orderID.String(),
		"status":  next.String(),
	})
}

// CompleteOrderStop handles POST /api/v1/orders/:orderId/stops/:stopId/complete.
func (s *Server) CompleteOrderStop(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsDriver() {
		return forbidden(ctx, "stop completion requires driver access")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	stopID, err := kernel.UUIDFromString(ctx.Param("stopId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderStopCommand(orderID, stopID, *principal.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.completeOrderStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitReportRequest files a field report against an order.
type SubmitReportRequest struct {
	Stage    string `json:"stage" validate:"required,oneof=pickup transit_update dropoff"`
	Notes    string `json:"notes"`
	PhotoRef string `json:"photoRef"`
}

// SubmitReport handles POST /api/v1/orders/:orderId/reports.
func (s *Server) SubmitReport(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsDriver() {
		return forbidden(ctx, "report submission requires driver access")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req SubmitReportRequest
	if err = bind(ctx, &req); err != nil {
		return err
	}

	stage, err := order.ReportStageFromString(req.Stage)
	if err != nil {
		return s.writeError(ctx, err)
	}

	reportID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReportCommand(
		reportID, orderID, *principal.DriverID, stage, req.Notes, req.PhotoRef)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.submitReportHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"reportId": reportID.String()})
}

// TrackingStopResponse is one stop on the public tracking page.
type TrackingStopResponse struct {
	Sequence  int     `json:"sequence"`
	Type      string  `json:"type"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Completed bool    `json:"completed"`
}

// TrackingResponse is the public, anonymous view of an order.
type TrackingResponse struct {
	TrackingID string                 `json:"trackingId"`
	Status     string                 `json:"status"`
	CreatedAt  string                 `json:"createdAt"`
	Stops      []TrackingStopResponse `json:"stops"`
}

// GetTracking handles GET /api/v1/tracking/:trackingId.
func (s *Server) GetTracking(ctx echo.Context) error {
	query, err := queries.NewGetOrderByTrackingIDQuery(ctx.Param("trackingId"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	stops := make([]TrackingStopResponse, len(result.Stops))
	for i, stop := range result.Stops {
		stops[i] = TrackingStopResponse{
			Sequence:  stop.Sequence,
			Type:      stop.Type,
			Address:   stop.Address,
			Lat:       stop.Lat,
			Lng:       stop.Lng,
			Completed: stop.Completed,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		TrackingID: result.TrackingID,
		Status:     result.Status,
		CreatedAt:  result.CreatedAt.UTC().Format(time.RFC3339),
		Stops:      stops,
	})
}

// bind decodes and validates a request body, replying 400 on failure.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}
	return nil
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, ErrorResponse{
		Code:    http.StatusForbidden,
		Message: message,
	})
}
