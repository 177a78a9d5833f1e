package commands

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/pkg/paycode"
)

// issueInvoice creates a pending invoice with a fresh public identifier and
// payment code and persists it with its audit record through the given
// transaction. Shared by direct issuance and monthly generation.
func issueInvoice(
	ctx context.Context,
	uow BillingUoW,
	merchant MerchantProfile,
	invoiceID, tenantID kernel.UUID,
	invoiceType invoice.Type,
	amount int64,
	currency, description string,
	dueDate, now time.Time,
) (*invoice.Invoice, error) {
	publicID, err := newInvoicePublicID(now)
	if err != nil {
		return nil, err
	}

	code, err := paycode.Code{
		InvoiceRef:      publicID,
		MerchantName:    merchant.Name,
		MerchantCity:    merchant.City,
		CurrencyNumeric: merchant.CurrencyNumeric,
		Amount:          amount,
		Description:     description,
	}.Payload()
	if err != nil {
		return nil, err
	}

	aggregate, err := invoice.NewInvoice(
		invoiceID, publicID, tenantID, invoiceType, amount,
		currency, description, code, dueDate, now)
	if err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = appendAudit(ctx, uow.AuditRepository(), nil,
		"invoice.created", "invoice", aggregate.ID(), publicID); err != nil {
		return nil, err
	}

	return aggregate, nil
}
