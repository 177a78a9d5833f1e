package queries_test

import (
	"context"
	"testing"
	"time"

	"kirim/internal/adapters/out/postgres/orderrepo"
	"kirim/internal/core/application/usecases/queries"
	"kirim/internal/core/domain/model/kernel"
	"kirim/internal/core/domain/model/order"
	"kirim/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderByTrackingIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByTrackingIDQueryHandler
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StopDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderByTrackingIDQueryHandler(db)
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_stops").Error)
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) seedOrder(trackingID string) *order.Order {
	pickup, err := kernel.NewGeoPoint(-6.2, 106.8)
	suite.Require().NoError(err)
	dropoff, err := kernel.NewGeoPoint(-6.25, 106.85)
	suite.Require().NoError(err)

	stop1, err := order.NewStop(kernel.NewUUID(), 1, order.StopTypePickup, "Jl. Sudirman No. 1", pickup)
	suite.Require().NoError(err)
	stop2, err := order.NewStop(kernel.NewUUID(), 2, order.StopTypeDropoff, "Jl. Thamrin No. 9", dropoff)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		trackingID,
		kernel.NewUUID(),
		order.Contact{Name: "Budi", Phone: "+628111111111"},
		order.Contact{Name: "Sari", Phone: "+628122222222"},
		15400,
		"",
		[]*order.Stop{stop1, stop2},
		nil,
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) TestHandle_ReturnsStatusAndStops() {
	suite.seedOrder("KRM-0D7E11AA42FF")

	query, err := queries.NewGetOrderByTrackingIDQuery("KRM-0D7E11AA42FF")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal("KRM-0D7E11AA42FF", result.TrackingID)
	suite.Equal("pending_dispatch", result.Status)
	suite.Require().Len(result.Stops, 2)
	suite.Equal(1, result.Stops[0].Sequence)
	suite.Equal("pickup", result.Stops[0].Type)
	suite.Equal("Jl. Sudirman No. 1", result.Stops[0].Address)
	suite.InDelta(-6.2, result.Stops[0].Lat, 1e-9)
	suite.False(result.Stops[0].Completed)
	suite.Equal(2, result.Stops[1].Sequence)
	suite.Equal("dropoff", result.Stops[1].Type)
}

func (suite *GetOrderByTrackingIDQueryHandlerTestSuite) TestHandle_UnknownTrackingID_NotFound() {
	query, err := queries.NewGetOrderByTrackingIDQuery("KRM-DOESNOTEXIST")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func TestGetOrderByTrackingIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByTrackingIDQueryHandlerTestSuite))
}
