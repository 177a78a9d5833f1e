package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/errs"
)

// fixturePendingOrder builds an unassigned order in pending_dispatch,
// placed against the given service.
func fixturePendingOrder(t *testing.T, serviceID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), "KRM-11AA22BB33CC", serviceID,
		order.Contact{Name: "Budi", Phone: "+62811111111"},
		order.Contact{Name: "Sari", Phone: "+62822222222"},
		15400, "", fixtureStops(t), nil, nil, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	svc := fixtureService(t, tenantID, true)
	aggregate := fixturePendingOrder(t, svc.ID())
	driver := fixtureDriver(t, tenantID)

	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), tenantID, driver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	serviceRepo := new(MockServiceRepository)
	driverRepo := new(MockDriverRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockTrackingNotifier)
	notifier.On("NotifyOrderStatusChanged", ctx, aggregate).Once()

	h := commands.NewAssignOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, aggregate.Status())
	require.NotNil(t, aggregate.Driver())
	assert.True(t, driver.ID().IsEqual(*aggregate.Driver()))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_CrossTenantOrder(t *testing.T) {
	ctx := t.Context()
	actingTenantID := kernel.NewUUID()
	victimSvc := fixtureService(t, kernel.NewUUID(), true)
	aggregate := fixturePendingOrder(t, victimSvc.ID())
	driver := fixtureDriver(t, actingTenantID)

	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), actingTenantID, driver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	serviceRepo := new(MockServiceRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, victimSvc.ID()).Return(victimSvc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory, new(MockTrackingNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	assert.Equal(t, order.PendingDispatch, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_ForeignDriver(t *testing.T) {
	ctx := t.Context()
	actingTenantID := kernel.NewUUID()
	foreignDriver := fixtureDriver(t, kernel.NewUUID())

	cmd, err := commands.NewAssignOrderCommand(
		kernel.NewUUID(), actingTenantID, foreignDriver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, foreignDriver.ID()).Return(foreignDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory, new(MockTrackingNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_DeactivatedDriver(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	driver := fixtureDriver(t, tenantID)
	driver.Deactivate()

	cmd, err := commands.NewAssignOrderCommand(kernel.NewUUID(), tenantID, driver.ID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", mock.Anything, driver.ID()).Return(driver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignOrderCommandHandler(factory, new(MockTrackingNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	orderRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
