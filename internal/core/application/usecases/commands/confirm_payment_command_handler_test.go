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
	"kirim/internal/pkg/errs"
)

func TestConfirmPaymentCommandHandler_Handle_SubscriptionRestoresTenant(t *testing.T) {
	ctx := t.Context()
	owner := fixtureTenant(t, tenant.SubscriptionPastDue, 5)
	inv := fixtureInvoice(t, owner.ID(), invoice.TypeSubscription)
	paidAt := time.Now().UTC()

	cmd, err := commands.NewConfirmPaymentCommand(inv.PublicID(), paidAt)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	tenantRepo := new(MockTenantRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByPublicID", mock.Anything, inv.PublicID()).Return(inv, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", mock.Anything, inv).Return(nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Get", mock.Anything, owner.ID()).Return(owner, nil).Once(),
		uow.On("TenantRepository").Return(tenantRepo).Once(),
		tenantRepo.On("Update", mock.Anything, owner).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, result.NewStatus)
	assert.Equal(t, invoice.StatusPaid, inv.Status())
	assert.Equal(t, tenant.SubscriptionActive, owner.SubscriptionStatus())
	uow.AssertExpectations(t)
	tenantRepo.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_CustomerPaymentLeavesTenantAlone(t *testing.T) {
	ctx := t.Context()
	owner := fixtureTenant(t, tenant.SubscriptionActive, 5)
	inv := fixtureInvoice(t, owner.ID(), invoice.TypeCustomerPayment)

	cmd, err := commands.NewConfirmPaymentCommand(inv.PublicID(), time.Now().UTC())
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	tenantRepo := new(MockTenantRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByPublicID", mock.Anything, inv.PublicID()).Return(inv, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", mock.Anything, inv).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	tenantRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	owner := fixtureTenant(t, tenant.SubscriptionActive, 5)
	inv := fixtureInvoice(t, owner.ID(), invoice.TypeCustomerPayment)
	require.NoError(t, inv.MarkPaid(time.Now().UTC()))

	cmd, err := commands.NewConfirmPaymentCommand(inv.PublicID(), time.Now().UTC())
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByPublicID", mock.Anything, inv.PublicID()).Return(inv, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	invoiceRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmPaymentCommandHandler_Handle_OverdueInvoiceAcceptsPayment(t *testing.T) {
	ctx := t.Context()
	owner := fixtureTenant(t, tenant.SubscriptionActive, 5)
	inv := fixtureInvoice(t, owner.ID(), invoice.TypeCustomerPayment)
	require.NoError(t, inv.MarkOverdue())

	cmd, err := commands.NewConfirmPaymentCommand(inv.PublicID(), time.Now().UTC())
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockBillingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("GetByPublicID", mock.Anything, inv.PublicID()).Return(inv, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", mock.Anything, inv).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBillingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatusPaid, result.NewStatus)
}
