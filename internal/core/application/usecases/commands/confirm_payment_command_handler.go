package commands

import (
	"context"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
)

// ConfirmPaymentResult reports the invoice moved by a confirmation.
type ConfirmPaymentResult struct {
	InvoiceID kernel.UUID
	NewStatus invoice.Status
}

// ConfirmPaymentCommandHandler settles an invoice. Paying a subscription
// invoice also restores the owning tenant's subscription standing in the
// same transaction; a second confirmation of the same invoice fails with a
// conflict from the aggregate, which is the idempotency guard against
// replayed webhooks.
type ConfirmPaymentCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory BillingUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Both pending and overdue invoices
// accept payment; cancelled and already-paid ones conflict.
func (h *ConfirmPaymentCommandHandler) Handle(
	ctx context.Context, cmd ConfirmPaymentCommand,
) (ConfirmPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.InvoiceRepository().GetByPublicID(ctx, cmd.PublicID())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = aggregate.MarkPaid(cmd.PaidAt()); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = uow.InvoiceRepository().Update(ctx, aggregate); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if aggregate.IsSubscription() {
		owner, tenantErr := uow.TenantRepository().Get(ctx, aggregate.TenantID())
		if tenantErr != nil {
			return ConfirmPaymentResult{}, tenantErr
		}
		owner.ActivateSubscription()
		if tenantErr = uow.TenantRepository().Update(ctx, owner); tenantErr != nil {
			return ConfirmPaymentResult{}, tenantErr
		}
	}

	if err = appendAudit(ctx, uow.AuditRepository(), nil,
		"invoice.paid", "invoice", aggregate.ID(), cmd.PublicID()); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	return ConfirmPaymentResult{
		InvoiceID: aggregate.ID(),
		NewStatus: aggregate.Status(),
	}, nil
}
