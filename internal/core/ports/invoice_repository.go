package ports

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	// Implementations lock the invoice row for the transaction, so a
	// concurrent payment confirmation observes the paid status instead of
	// applying the transition twice.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByPublicID retrieves an invoice by the public identifier embedded
	// in payment codes and gateway order references, with the same locking
	// as Get.
	GetByPublicID(ctx context.Context, publicID string) (*invoice.Invoice, error)

	// GetSubscriptionPastDue retrieves pending subscription invoices whose
	// due date has passed. The overdue sweep only ages subscription
	// charges; customer payment invoices stay pending until paid or
	// cancelled.
	GetSubscriptionPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error)

	// ExistsSubscriptionForPeriod reports whether a subscription invoice
	// already exists for the tenant in the given billing period
	// ("2026-08"). Used to keep monthly generation idempotent.
	ExistsSubscriptionForPeriod(ctx context.Context, tenantID kernel.UUID, period string) (bool, error)
}
