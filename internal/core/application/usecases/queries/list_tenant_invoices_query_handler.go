package queries

import (
	"context"

	"kirim/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTenantInvoicesQueryHandler reads a tenant's billing history with
// direct SQL for the billing dashboard.
type ListTenantInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewListTenantInvoicesQueryHandler creates a handler for invoice listings.
func NewListTenantInvoicesQueryHandler(db *gorm.DB) ListTenantInvoicesQueryHandler {
	return ListTenantInvoicesQueryHandler{db: db}
}

// Handle returns all of the tenant's invoices ordered by creation time,
// newest first. An unknown tenant yields an empty slice, not an error.
func (h ListTenantInvoicesQueryHandler) Handle(
	ctx context.Context,
	query ListTenantInvoicesQuery,
) ([]ListTenantInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]ListTenantInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			public_id,
			invoice_type,
			status,
			amount,
			currency,
			description,
			payment_code,
			due_date,
			paid_at,
			created_at
		FROM invoices
		WHERE tenant_id = ?
		ORDER BY created_at DESC
	`, query.TenantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var inv ListTenantInvoicesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&inv.PublicID,
			&inv.Type,
			&inv.Status,
			&inv.Amount,
			&inv.Currency,
			&inv.Description,
			&inv.PaymentCode,
			&inv.DueDate,
			&inv.PaidAt,
			&inv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		inv.ID = invoiceID
		invoices = append(invoices, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
