// Package http exposes the platform's REST API on echo. Handlers translate
// request bodies into commands and queries, and application error kinds into
// response codes; no business rules live here.
package http

import (
	"net/http"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/ports"
	"kirim/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	calculateQuoteHandler      commands.CalculateQuoteCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	assignOrderHandler         commands.AssignOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	completeOrderStopHandler   commands.CompleteOrderStopCommandHandler
	submitReportHandler        commands.SubmitReportCommandHandler
	inviteDriverHandler        commands.InviteDriverCommandHandler
	acceptInviteHandler        commands.AcceptInviteCommandHandler
	resendInviteHandler        commands.ResendInviteCommandHandler
	removeDriverHandler        commands.RemoveDriverCommandHandler
	createInvoiceHandler       commands.CreateInvoiceCommandHandler
	confirmPaymentHandler      commands.ConfirmPaymentCommandHandler
	paymentNotificationHandler commands.ProcessPaymentNotificationCommandHandler

	// Query handlers
	trackingHandler     queries.GetOrderByTrackingIDQueryHandler
	listInvoicesHandler queries.ListTenantInvoicesQueryHandler
	verifyInviteHandler queries.VerifyInviteQueryHandler

	auth      *Authenticator
	rateLimit RateLimitConfig
	counter   ports.CounterStore
	logger    zerolog.Logger
}

// RateLimitConfig bounds anonymous intake surfaces per client IP over a
// fixed window.
type RateLimitConfig struct {
	Requests int64
	Window   int64 // seconds
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	calculateQuoteHandler commands.CalculateQuoteCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	completeOrderStopHandler commands.CompleteOrderStopCommandHandler,
	submitReportHandler commands.SubmitReportCommandHandler,
	inviteDriverHandler commands.InviteDriverCommandHandler,
	acceptInviteHandler commands.AcceptInviteCommandHandler,
	resendInviteHandler commands.ResendInviteCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	paymentNotificationHandler commands.ProcessPaymentNotificationCommandHandler,
	trackingHandler queries.GetOrderByTrackingIDQueryHandler,
	listInvoicesHandler queries.ListTenantInvoicesQueryHandler,
	verifyInviteHandler queries.VerifyInviteQueryHandler,
	auth *Authenticator,
	counter ports.CounterStore,
	rateLimit RateLimitConfig,
	logger zerolog.Logger,
) *Server {
	return &Server{
		calculateQuoteHandler:      calculateQuoteHandler,
		createOrderHandler:         createOrderHandler,
		assignOrderHandler:         assignOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		completeOrderStopHandler:   completeOrderStopHandler,
		submitReportHandler:        submitReportHandler,
		inviteDriverHandler:        inviteDriverHandler,
		acceptInviteHandler:        acceptInviteHandler,
		resendInviteHandler:        resendInviteHandler,
		removeDriverHandler:        removeDriverHandler,
		createInvoiceHandler:       createInvoiceHandler,
		confirmPaymentHandler:      confirmPaymentHandler,
		paymentNotificationHandler: paymentNotificationHandler,
		trackingHandler:            trackingHandler,
		listInvoicesHandler:        listInvoicesHandler,
		verifyInviteHandler:        verifyInviteHandler,
		auth:                       auth,
		counter:                    counter,
		rateLimit:                  rateLimit,
		logger:                     logger,
	}
}

// RegisterRoutes mounts every route on the echo instance. Anonymous intake
// surfaces are rate limited; everything behind authn goes through the JWT
// middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)

	limited := s.limitByIP(s.rateLimit)
	authed := s.auth.Middleware()

	api := e.Group("/api/v1")

	// Anonymous surfaces.
	api.POST("/quotes", s.CalculateQuote, limited, s.auth.Optional())
	api.POST("/orders", s.CreateOrder, limited, s.auth.Optional())
	api.GET("/tracking/:trackingId", s.GetTracking, limited)
	api.GET("/invites/verify", s.VerifyInvite, limited)
	api.POST("/payments/notifications", s.PaymentNotification)

	// Tenant staff surfaces.
	api.POST("/orders/:orderId/assign", s.AssignOrder, authed)
	api.POST("/invites", s.InviteDriver, authed)
	api.POST("/invites/:inviteId/resend", s.ResendInvite, authed)
	api.POST("/invites/accept", s.AcceptInvite, authed)
	api.DELETE("/drivers/:driverId", s.RemoveDriver, authed)
	api.POST("/invoices", s.CreateInvoice, authed)
	api.GET("/invoices", s.ListInvoices, authed)
	api.POST("/invoices/:publicId/confirm", s.ConfirmPayment, authed)

	// Driver surfaces.
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus, authed)
	api.POST("/orders/:orderId/stops/:stopId/complete", s.CompleteOrderStop, authed)
	api.POST("/orders/:orderId/reports", s.SubmitReport, authed)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps an application error to its HTTP status. Internal errors
// are logged and masked; every other kind surfaces its message.
func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusCodeOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.Error().Err(err).
			Str("path", ctx.Request().URL.Path).
			Msg("request failed")
		message = "internal error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func statusCodeOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindBadRequest:
		return http.StatusBadRequest
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindPaymentRequired:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
