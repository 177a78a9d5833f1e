package http

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"kirim/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// PaymentNotificationResponse acknowledges a processed webhook.
type PaymentNotificationResponse struct {
	Message   string `json:"message"`
	InvoiceID string `json:"invoiceId,omitempty"`
	NewStatus string `json:"newStatus,omitempty"`
}

// PaymentNotification handles POST /api/v1/payments/notifications, the
// payment gateway's webhook endpoint.
//
// Bad signatures and malformed payloads answer 400 and unknown invoice
// references 404, telling the gateway not to redeliver. Infrastructure
// failures answer 500 with the retry already scheduled internally, so a
// gateway redelivery and our own retry never double apply: confirmation is
// idempotent.
func (s *Server) PaymentNotification(ctx echo.Context) error {
	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "unreadable request body",
		})
	}

	cmd, err := commands.NewProcessPaymentNotificationCommand(taskIDFor(payload), payload, 1)
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.paymentNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	message := "notification ignored"
	if result.Applied {
		message = "notification applied"
	}

	return ctx.JSON(http.StatusOK, PaymentNotificationResponse{
		Message:   message,
		InvoiceID: result.PublicID,
		NewStatus: result.NewStatus.String(),
	})
}

// taskIDFor derives a stable retry-task ID from the payload so gateway
// redeliveries of the same notification collapse onto one queue entry.
func taskIDFor(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:16])
}
