package commands

import (
	"context"
	"time"

	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
)

// subscriptionDueDay is the day of the following month a subscription
// invoice falls due on.
const subscriptionDueDay = 15

// BillingPlan carries the subscription pricing applied to every tenant.
type BillingPlan struct {
	// PerSeatRate is the monthly charge per driver seat in whole currency
	// units.
	PerSeatRate int64

	// Currency is the ISO 4217 alphabetic billing currency.
	Currency string
}

// GenerateMonthlyInvoicesResult summarizes one generation run.
type GenerateMonthlyInvoicesResult struct {
	Generated int
	Skipped   int
}

// GenerateMonthlyInvoicesCommandHandler issues one subscription invoice per
// billable tenant for a period. Each tenant is processed in its own
// transaction so one failure does not poison the whole run, and a
// period-scoped existence check keeps re-runs idempotent.
type GenerateMonthlyInvoicesCommandHandler struct {
	uowFactory BillingUoWFactory
	merchant   MerchantProfile
	plan       BillingPlan
}

// NewGenerateMonthlyInvoicesCommandHandler creates a handler for monthly
// subscription invoicing.
func NewGenerateMonthlyInvoicesCommandHandler(
	uowFactory BillingUoWFactory, merchant MerchantProfile, plan BillingPlan,
) GenerateMonthlyInvoicesCommandHandler {
	return GenerateMonthlyInvoicesCommandHandler{
		uowFactory: uowFactory,
		merchant:   merchant,
		plan:       plan,
	}
}

// Handle processes one generation run. The invoice amount is the tenant's
// seat limit times the per-seat rate; the due date is the 15th of the month
// after the billing period.
func (h *GenerateMonthlyInvoicesCommandHandler) Handle(
	ctx context.Context, cmd GenerateMonthlyInvoicesCommand,
) (GenerateMonthlyInvoicesResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateMonthlyInvoicesResult{}, err
	}

	tenants, err := h.listBillable(ctx)
	if err != nil {
		return GenerateMonthlyInvoicesResult{}, err
	}

	dueDate := time.Date(cmd.Year(), cmd.Month()+1, subscriptionDueDay, 0, 0, 0, 0, time.UTC)

	var result GenerateMonthlyInvoicesResult
	for _, tenantID := range tenants {
		generated, genErr := h.generateForTenant(ctx, cmd, tenantID, dueDate)
		if genErr != nil {
			return result, genErr
		}
		if generated {
			result.Generated++
		} else {
			result.Skipped++
		}
	}

	return result, nil
}

func (h *GenerateMonthlyInvoicesCommandHandler) listBillable(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tenants, err := uow.TenantRepository().GetAllBillable(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *GenerateMonthlyInvoicesCommandHandler) generateForTenant(
	ctx context.Context, cmd GenerateMonthlyInvoicesCommand, tenantID kernel.UUID, dueDate time.Time,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.InvoiceRepository().ExistsSubscriptionForPeriod(ctx, tenantID, cmd.Period())
	if err != nil {
		return false, err
	}
	if exists {
		return false, uow.Commit(ctx)
	}

	owner, err := uow.TenantRepository().Get(ctx, tenantID)
	if err != nil {
		return false, err
	}

	amount := int64(owner.ActiveDriverLimit()) * h.plan.PerSeatRate

	_, err = issueInvoice(ctx, uow, h.merchant,
		kernel.NewUUID(), tenantID, invoice.TypeSubscription, amount,
		h.plan.Currency, invoice.SubscriptionDescription(cmd.Period()),
		dueDate, time.Now().UTC())
	if err != nil {
		return false, err
	}

	return true, uow.Commit(ctx)
}
