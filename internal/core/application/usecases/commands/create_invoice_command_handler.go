package commands

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/kernel"
)

// MerchantProfile carries the payee fields embedded into every generated
// payment code.
type MerchantProfile struct {
	Name            string
	City            string
	CurrencyNumeric string
}

// CreateInvoiceResult reports the identifiers and payment code callers need
// after issuing an invoice.
type CreateInvoiceResult struct {
	InvoiceID   kernel.UUID
	PublicID    string
	PaymentCode string
}

// CreateInvoiceCommandHandler issues invoices. Every invoice is born with a
// scannable payment code derived from its public identifier and amount.
type CreateInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	merchant   MerchantProfile
}

// NewCreateInvoiceCommandHandler creates a handler for invoice issuance.
func NewCreateInvoiceCommandHandler(
	uowFactory BillingUoWFactory, merchant MerchantProfile,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		merchant:   merchant,
	}
}

// Handle processes the issuance command. The billed tenant must exist; the
// invoice starts pending.
func (h *CreateInvoiceCommandHandler) Handle(
	ctx context.Context, cmd CreateInvoiceCommand,
) (CreateInvoiceResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateInvoiceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateInvoiceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TenantRepository().Get(ctx, cmd.TenantID()); err != nil {
		return CreateInvoiceResult{}, err
	}

	aggregate, err := issueInvoice(ctx, uow, h.merchant,
		cmd.InvoiceID(), cmd.TenantID(), cmd.Type(), cmd.Amount(),
		cmd.Currency(), cmd.Description(), cmd.DueDate(), time.Now().UTC())
	if err != nil {
		return CreateInvoiceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateInvoiceResult{}, err
	}

	return CreateInvoiceResult{
		InvoiceID:   aggregate.ID(),
		PublicID:    aggregate.PublicID(),
		PaymentCode: aggregate.PaymentCode(),
	}, nil
}
