package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kirim/internal/core/application/usecases/commands"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/services"
	"kirim/internal/pkg/errs"
)

func fixtureRoute(t *testing.T) []kernel.GeoPoint {
	t.Helper()
	return []kernel.GeoPoint{
		fixturePoint(t, -6.21, 106.82),
		fixturePoint(t, -6.19, 106.83),
	}
}

func TestCalculateQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	svc := fixtureService(t, kernel.NewUUID(), true)

	cmd, err := commands.NewCalculateQuoteCommand(svc.ID(), nil, fixtureRoute(t))
	require.NoError(t, err)

	serviceRepo := new(MockServiceRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ServiceRepository").Return(serviceRepo).Once(),
		serviceRepo.On("Get", mock.Anything, svc.ID()).Return(svc, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCalculateQuoteCommandHandler(
		factory, services.NewQuoteCalculator(fixedDistanceCalculator{km: 5.2}))

	quote, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	// 5000 base + 2000/km over 5.2 km.
	assert.Equal(t, int64(15400), quote.EstimatedCost)
	assert.InDelta(t, 5.2, quote.TotalDistanceKm, 0.001)
	uow.AssertExpectations(t)
	serviceRepo.AssertExpectations(t)
}

func TestCalculateQuoteCommandHandler_Handle_UnlistedServiceHidden(t *testing.T) {
	ctx := t.Context()
	svc := fixtureService(t, kernel.NewUUID(), false)
	outsider := kernel.NewUUID()

	cmd, err := commands.NewCalculateQuoteCommand(svc.ID(), &outsider, fixtureRoute(t))
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

	h := commands.NewCalculateQuoteCommandHandler(
		factory, services.NewQuoteCalculator(fixedDistanceCalculator{km: 5.2}))

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestNewCalculateQuoteCommand_RequiresTwoPoints(t *testing.T) {
	_, err := commands.NewCalculateQuoteCommand(kernel.NewUUID(), nil, fixtureRoute(t)[:1])
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuoteRouteIsTooShort)
}
