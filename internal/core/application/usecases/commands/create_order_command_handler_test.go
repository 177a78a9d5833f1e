package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/core/domain/services"
	"kirim/internal/pkg/errs"
)

type fixedDistanceCalculator struct{ km float64 }

func (f fixedDistanceCalculator) DistanceKm(_ context.Context, _, _ kernel.GeoPoint) (float64, error) {
	return f.km, nil
}

func fixtureStopSpecs(t *testing.T) []commands.StopSpec {
	t.Helper()
	return []commands.StopSpec{
		{Sequence: 1, Type: order.StopTypePickup, Address: "Jl. Sudirman 1", Point: fixturePoint(t, -6.21, 106.82)},
		{Sequence: 2, Type: order.StopTypeDropoff, Address: "Jl. Thamrin 9", Point: fixturePoint(t, -6.19, 106.83)},
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	svc := fixtureService(t, kernel.NewUUID(), true)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, nil, svc.ID(),
		order.Contact{Name: "Budi", Phone: "+62811111111"},
		order.Contact{Name: "Sari", Phone: "+62822222222"},
		"fragile", fixtureStopSpecs(t), nil, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	serviceRepo := new(MockServiceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockTrackingNotifier)
	notifier.On("NotifyOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, services.NewQuoteCalculator(fixedDistanceCalculator{km: 5.2}), notifier)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	// 5000 base + 2000/km over 5.2 km.
	assert.Equal(t, int64(15400), result.EstimatedCost)
	assert.True(t, strings.HasPrefix(result.TrackingID, "KRM-"))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnlistedServiceHidden(t *testing.T) {
	ctx := t.Context()
	svc := fixtureService(t, kernel.NewUUID(), false)
	outsider := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), &outsider, svc.ID(),
		order.Contact{Name: "Budi"}, order.Contact{Name: "Sari"},
		"", fixtureStopSpecs(t), nil, nil)
	require.NoError(t, err)

	serviceRepo := new(MockServiceRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, services.NewQuoteCalculator(fixedDistanceCalculator{km: 5.2}), new(MockTrackingNotifier))

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestCreateOrderCommandHandler_Handle_OwnerSeesUnlistedService(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	svc := fixtureService(t, ownerID, false)
	driver := fixtureDriver(t, ownerID)
	driverID := driver.ID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), &ownerID, svc.ID(),
		order.Contact{Name: "Budi"}, order.Contact{Name: "Sari"},
		"", fixtureStopSpecs(t), &driverID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	serviceRepo := new(MockServiceRepository)
	driverRepo := new(MockDriverRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceRepository").Return(serviceRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AuditRepository").Return(auditRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	serviceRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once()
	driverRepo.On("Get", mock.Anything, driverID).Return(driver, nil).Once()
	var added *order.Order
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Record")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockTrackingNotifier)
	notifier.On("NotifyOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Once()

	h := commands.NewCreateOrderCommandHandler(
		factory, services.NewQuoteCalculator(fixedDistanceCalculator{km: 2}), notifier)

	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, added)
	// Pre-assigned orders skip dispatch and start accepted.
	assert.Equal(t, order.Accepted, added.Status())
	assert.True(t, added.IsAssignedTo(driverID))
}

func TestNewCreateOrderCommand_RequiresTwoStops(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, kernel.NewUUID(),
		order.Contact{Name: "Budi"}, order.Contact{Name: "Sari"},
		"", fixtureStopSpecs(t)[:1], nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStopsAreRequired)
}

func TestNewCreateOrderCommand_VehicleRequiresDriver(t *testing.T) {
	vehicleID := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, kernel.NewUUID(),
		order.Contact{Name: "Budi"}, order.Contact{Name: "Sari"},
		"", fixtureStopSpecs(t), nil, &vehicleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVehicleWithoutDriver)
}