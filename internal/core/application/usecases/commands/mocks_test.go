package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/domain/model/audit"
	"kirim/internal/core/domain/model/catalog"
	"kirim/internal/core/domain/model/invoice"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/core/domain/model/tenant"
	"kirim/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByTrackingID(ctx context.Context, trackingID string) (*order.Order, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) AddReport(ctx context.Context, report *order.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetByPublicID(ctx context.Context, publicID string) (*invoice.Invoice, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) GetSubscriptionPastDue(ctx context.Context, now time.Time) ([]*invoice.Invoice, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*invoice.Invoice), args.Error(1)
}
func (m *MockInvoiceRepository) ExistsSubscriptionForPeriod(
	ctx context.Context, tenantID kernel.UUID, period string,
) (bool, error) {
	args := m.Called(ctx, tenantID, period)
	return args.Bool(0), args.Error(1)
}

type MockTenantRepository struct{ mock.Mock }

func (m *MockTenantRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Tenant), args.Error(1)
}
func (m *MockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTenantRepository) GetAllBillable(ctx context.Context) ([]*tenant.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tenant.Tenant), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *tenant.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Update(ctx context.Context, d *tenant.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetByUserID(ctx context.Context, tenantID, userID kernel.UUID) (*tenant.Driver, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Driver), args.Error(1)
}
func (m *MockDriverRepository) GetActiveByEmail(
	ctx context.Context, tenantID kernel.UUID, email string,
) (*tenant.Driver, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Driver), args.Error(1)
}
func (m *MockDriverRepository) CountActive(ctx context.Context, tenantID kernel.UUID) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

type MockInviteRepository struct{ mock.Mock }

func (m *MockInviteRepository) Add(ctx context.Context, inv *tenant.Invite) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInviteRepository) Update(ctx context.Context, inv *tenant.Invite) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInviteRepository) Get(ctx context.Context, id kernel.UUID) (*tenant.Invite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Invite), args.Error(1)
}
func (m *MockInviteRepository) GetByToken(ctx context.Context, token string) (*tenant.Invite, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Invite), args.Error(1)
}
func (m *MockInviteRepository) GetPendingByEmail(
	ctx context.Context, tenantID kernel.UUID, email string,
) (*tenant.Invite, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Invite), args.Error(1)
}

type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.DeliveryService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.DeliveryService), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ServiceRepository() ports.ServiceRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceRepository)
}
func (m *MockOrderUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}
func (m *MockOrderUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTenantUoW struct{ mock.Mock }

func (m *MockTenantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTenantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTenantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTenantUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}
func (m *MockTenantUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}
func (m *MockTenantUoW) InviteRepository() ports.InviteRepository {
	args := m.Called()
	return args.Get(0).(ports.InviteRepository)
}
func (m *MockTenantUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockTenantUoWFactory struct{ mock.Mock }

func (m *MockTenantUoWFactory) Create() commands.TenantUoW {
	args := m.Called()
	return args.Get(0).(commands.TenantUoW)
}

type MockBillingUoW struct{ mock.Mock }

func (m *MockBillingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockBillingUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockBillingUoW) TenantRepository() ports.TenantRepository {
	args := m.Called()
	return args.Get(0).(ports.TenantRepository)
}
func (m *MockBillingUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockBillingUoWFactory struct{ mock.Mock }

func (m *MockBillingUoWFactory) Create() commands.BillingUoW {
	args := m.Called()
	return args.Get(0).(commands.BillingUoW)
}

type MockTrackingNotifier struct{ mock.Mock }

func (m *MockTrackingNotifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

type MockRetryQueue struct{ mock.Mock }

func (m *MockRetryQueue) Enqueue(ctx context.Context, task ports.RetryTask, runAt time.Time) error {
	args := m.Called(ctx, task, runAt)
	return args.Error(0)
}
func (m *MockRetryQueue) PopDue(ctx context.Context, now time.Time, limit int) ([]ports.RetryTask, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RetryTask), args.Error(1)
}

type MockWebhookFailureStore struct{ mock.Mock }

func (m *MockWebhookFailureStore) Add(ctx context.Context, failure ports.WebhookFailure) error {
	args := m.Called(ctx, failure)
	return args.Error(0)
}
