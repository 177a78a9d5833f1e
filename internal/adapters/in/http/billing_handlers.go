package http

import (
	"net/http"
	"time"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateInvoiceRequest issues a one-off invoice against the caller's tenant.
type CreateInvoiceRequest struct {
	Type        string `json:"type" validate:"required,oneof=subscription customer_payment"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3"`
	Description string `json:"description" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
}

// CreateInvoiceResponse reports the issued invoice and its payment code.
type CreateInvoiceResponse struct {
	InvoiceID   string `json:"invoiceId"`
	PublicID    string `json:"publicId"`
	PaymentCode string `json:"paymentCode"`
}

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "invoice creation requires tenant staff access")
	}

	var req CreateInvoiceRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	invoiceType, err := invoice.TypeFromString(req.Type)
	if err != nil {
		return s.writeError(ctx, err)
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "dueDate must be formatted as YYYY-MM-DD",
		})
	}

	cmd, err := commands.NewCreateInvoiceCommand(
		kernel.NewUUID(), *principal.TenantID, invoiceType,
		req.Amount, req.Currency, req.Description, dueDate.UTC())
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateInvoiceResponse{
		InvoiceID:   result.InvoiceID.String(),
		PublicID:    result.PublicID,
		PaymentCode: result.PaymentCode,
	})
}

// InvoiceResponse is one invoice row in the tenant's billing history.
type InvoiceResponse struct {
	ID          string  `json:"id"`
	PublicID    string  `json:"publicId"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	PaymentCode string  `json:"paymentCode"`
	DueDate     string  `json:"dueDate"`
	PaidAt      *string `json:"paidAt,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if !principal.IsTenantStaff() {
		return forbidden(ctx, "invoice listing requires tenant staff access")
	}

	query, err := queries.NewListTenantInvoicesQuery(*principal.TenantID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	rows, err := s.listInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]InvoiceResponse, len(rows))
	for i, row := range rows {
		item := InvoiceResponse{
			ID:          row.ID.String(),
			PublicID:    row.PublicID,
			Type:        row.Type,
			Status:      row.Status,
			Amount:      row.Amount,
			Currency:    row.Currency,
			Description: row.Description,
			PaymentCode: row.PaymentCode,
			DueDate:     row.DueDate.UTC().Format("2006-01-02"),
			CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
		}
		if row.PaidAt != nil {
			paidAt := row.PaidAt.UTC().Format(time.RFC3339)
			item.PaidAt = &paidAt
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmPaymentResponse reports the settled invoice.
type ConfirmPaymentResponse struct {
	InvoiceID string `json:"invoiceId"`
	NewStatus string `json:"newStatus"`
}

// ConfirmPayment handles POST /api/v1/invoices/:publicId/confirm, the manual
// settlement path for payments reconciled outside the gateway.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	if principal.Role != "admin" {
		return forbidden(ctx, "manual payment confirmation requires admin access")
	}

	cmd, err := commands.NewConfirmPaymentCommand(ctx.Param("publicId"), time.Now().UTC())
	if err != nil {
		return s.writeError(ctx, err)
	}

	result, err := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ConfirmPaymentResponse{
		InvoiceID: result.InvoiceID.String(),
		NewStatus: result.NewStatus.String(),
	})
}
