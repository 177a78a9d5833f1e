package commands

import (
	"context"

	"kirim/internal/core/domain/model/kernel"
)

// MarkOverdueInvoicesResult summarizes one overdue sweep.
type MarkOverdueInvoicesResult struct {
	MarkedOverdue int
}

// MarkOverdueInvoicesCommandHandler flips pending subscription invoices
// past their due date to overdue and moves the owning tenant to past-due
// standing, which blocks new driver admissions until a payment lands.
// Customer payment invoices are outside the sweep.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for overdue sweeps.
func NewMarkOverdueInvoicesCommandHandler(uowFactory BillingUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep in one transaction. Overdue invoices keep
// accepting payment, so the sweep never strands money.
func (h *MarkOverdueInvoicesCommandHandler) Handle(
	ctx context.Context, cmd MarkOverdueInvoicesCommand,
) (MarkOverdueInvoicesResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkOverdueInvoicesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkOverdueInvoicesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pastDue, err := uow.InvoiceRepository().GetSubscriptionPastDue(ctx, cmd.Now())
	if err != nil {
		return MarkOverdueInvoicesResult{}, err
	}

	var result MarkOverdueInvoicesResult
	for _, aggregate := range pastDue {
		if err = aggregate.MarkOverdue(); err != nil {
			return result, err
		}
		if err = uow.InvoiceRepository().Update(ctx, aggregate); err != nil {
			return result, err
		}

		if err = h.markTenantPastDue(ctx, uow, aggregate.TenantID()); err != nil {
			return result, err
		}

		if err = appendAudit(ctx, uow.AuditRepository(), nil,
			"invoice.overdue", "invoice", aggregate.ID(), aggregate.PublicID()); err != nil {
			return result, err
		}

		result.MarkedOverdue++
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}
	return result, nil
}

// markTenantPastDue downgrades the tenant's standing. Already past-due
// tenants are left untouched to avoid churning updated rows on every sweep.
func (h *MarkOverdueInvoicesCommandHandler) markTenantPastDue(
	ctx context.Context, uow BillingUoW, tenantID kernel.UUID,
) error {
	owner, err := uow.TenantRepository().Get(ctx, tenantID)
	if err != nil {
		return err
	}
	if !owner.MarkPastDue() {
		return nil
	}
	return uow.TenantRepository().Update(ctx, owner)
}
