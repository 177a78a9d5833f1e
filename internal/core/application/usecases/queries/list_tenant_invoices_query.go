package queries

import (
	"errors"
	"time"

	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/errs"
	"kirim/internal/pkg/guard"
)

var ErrListTenantInvoicesQueryIsNotConstructed = errors.New(
	"ListTenantInvoicesQuery must be created via NewListTenantInvoicesQuery constructor",
)

// ListTenantInvoicesQuery retrieves a tenant's invoices, newest first.
type ListTenantInvoicesQuery struct {
	guard guard.ConstructorGuard

	tenantID kernel.UUID
}

// NewListTenantInvoicesQuery creates an invoice listing query for a tenant.
func NewListTenantInvoicesQuery(tenantID kernel.UUID) (ListTenantInvoicesQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return ListTenantInvoicesQuery{}, errs.NewValueIsRequiredErrorWithCause("tenantID", err)
	}

	return ListTenantInvoicesQuery{
		guard:    guard.NewConstructorGuard(),
		tenantID: tenantID,
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListTenantInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListTenantInvoicesQueryIsNotConstructed)
}

// TenantID returns the owning tenant being listed.
func (q ListTenantInvoicesQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// ListTenantInvoicesQueryResponse is one invoice row in the tenant's billing
// history.
type ListTenantInvoicesQueryResponse struct {
	ID          kernel.UUID
	PublicID    string
	Type        string
	Status      string
	Amount      int64
	Currency    string
	Description string
	PaymentCode string
	DueDate     time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
}
