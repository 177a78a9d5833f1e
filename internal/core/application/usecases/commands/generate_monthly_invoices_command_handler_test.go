package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/tenant"
)

var testMerchant = commands.MerchantProfile{
	Name:            "Kirim",
	City:            "Jakarta",
	CurrencyNumeric: "360",
}

var testPlan = commands.BillingPlan{PerSeatRate: 50000, Currency: "IDR"}

func TestGenerateMonthlyInvoicesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	billed := fixtureTenant(t, tenant.SubscriptionActive, 5)
	alreadyBilled := fixtureTenant(t, tenant.SubscriptionPastDue, 3)

	cmd, err := commands.NewGenerateMonthlyInvoicesCommand(2026, time.August)
	require.NoError(t, err)
	assert.Equal(t, "2026-08", cmd.Period())

	tenantRepo := new(MockTenantRepository)
	invoiceRepo := new(MockInvoiceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBillingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("TenantRepository").Return(tenantRepo)
	uow.On("InvoiceRepository").Return(invoiceRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	tenantRepo.On("GetAllBillable", mock.Anything).
		Return([]*tenant.Tenant{billed, alreadyBilled}, nil).Once()
	invoiceRepo.On("ExistsSubscriptionForPeriod", mock.Anything, billed.ID(), "2026-08").
		Return(false, nil).Once()
	invoiceRepo.On("ExistsSubscriptionForPeriod", mock.Anything, alreadyBilled.ID(), "2026-08").
		Return(true, nil).Once()
	tenantRepo.On("Get", mock.Anything, billed.ID()).Return(billed, nil).Once()

	var issued *invoice.Invoice
	invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
		Run(func(args mock.Arguments) { issued = args.Get(1).(*invoice.Invoice) }).
		Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once()

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewGenerateMonthlyInvoicesCommandHandler(factory, testMerchant, testPlan)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Equal(t, 1, result.Skipped)

	require.NotNil(t, issued)
	// 5 seats at the per-seat rate.
	assert.Equal(t, int64(250000), issued.Amount())
	assert.Equal(t, invoice.TypeSubscription, issued.Type())
	assert.Equal(t, invoice.StatusPending, issued.Status())
	assert.Equal(t, invoice.SubscriptionDescription("2026-08"), issued.Description())
	assert.Equal(t,
		time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), issued.DueDate())
	assert.NotEmpty(t, issued.PaymentCode())
	invoiceRepo.AssertExpectations(t)
}

func TestGenerateMonthlyInvoicesCommandHandler_Handle_RerunIsIdempotent(t *testing.T) {
	ctx := t.Context()
	billed := fixtureTenant(t, tenant.SubscriptionActive, 5)

	cmd, err := commands.NewGenerateMonthlyInvoicesCommand(2026, time.August)
	require.NoError(t, err)

	tenantRepo := new(MockTenantRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockBillingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("TenantRepository").Return(tenantRepo)
	uow.On("InvoiceRepository").Return(invoiceRepo)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	tenantRepo.On("GetAllBillable", mock.Anything).Return([]*tenant.Tenant{billed}, nil).Once()
	invoiceRepo.On("ExistsSubscriptionForPeriod", mock.Anything, billed.ID(), "2026-08").
		Return(true, nil).Once()

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewGenerateMonthlyInvoicesCommandHandler(factory, testMerchant, testPlan)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	assert.Equal(t, 1, result.Skipped)
	invoiceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
