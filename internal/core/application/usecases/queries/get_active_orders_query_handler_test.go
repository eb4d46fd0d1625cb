package queries_test

import (
	"context"
	"testing"
	"time"

	"catertrack/internal/adapters/out/postgres/orderrepo"
	"catertrack/internal/core/application/usecases/queries"
	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_tracking_events").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_WithOnlyDeliveredOrders_ReturnsEmptySlice() {
	suite.seedOrder(order.Delivered)
	suite.seedOrder(order.Delivered)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_WithMixedStatuses_ReturnsOnlyUndelivered() {
	placed := suite.seedOrder(order.Placed)
	preparing := suite.seedOrder(order.Preparing)
	inTransit := suite.seedOrder(order.InTransit)
	delivered := suite.seedOrder(order.Delivered)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	resultNumbers := make(map[string]queries.GetActiveOrdersQueryResponse)
	for _, r := range result {
		resultNumbers[r.TrackingNumber.String()] = r
	}

	for _, o := range []*order.Order{placed, preparing, inTransit} {
		entry, exists := resultNumbers[o.TrackingNumber().String()]
		suite.True(exists, "Order %s should be in results", o.TrackingNumber())
		suite.Equal(o.Status(), entry.Status)
		suite.Equal(o.Progress(), entry.Progress)
	}

	_, exists := resultNumbers[delivered.TrackingNumber().String()]
	suite.False(exists, "Delivered order %s should not be in results", delivered.TrackingNumber())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ProgressMatchesStatus() {
	suite.seedOrder(order.Placed)
	suite.seedOrder(order.Preparing)
	suite.seedOrder(order.InTransit)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	expected := map[order.Status]int{
		order.Placed:    25,
		order.Preparing: 50,
		order.InTransit: 75,
	}
	for _, r := range result {
		suite.Equal(expected[r.Status], r.Progress)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedByPlacementTime() {
	// Seed in reverse placement order to verify sorting
	base := time.Now().UTC().Add(-6 * time.Hour).Truncate(time.Microsecond)
	suite.seedPlacedOrderAt(base.Add(2 * time.Hour))
	suite.seedPlacedOrderAt(base)
	suite.seedPlacedOrderAt(base.Add(time.Hour))

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	for i := range len(result) - 1 {
		suite.False(result[i+1].PlacedAt.Before(result[i].PlacedAt),
			"Orders should be sorted by placement time")
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	for range 10 {
		suite.seedOrder(order.Placed)
	}

	query := queries.NewGetActiveOrdersQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// seedOrder persists a fresh order advanced to the requested status.
func (suite *GetActiveOrdersQueryHandlerTestSuite) seedOrder(status order.Status) *order.Order {
	o := suite.seedablePlacedOrder(time.Now().UTC().Add(-2 * time.Hour).Truncate(time.Microsecond))

	if status.Precedes(order.Placed) || status == order.Placed {
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
		return o
	}

	suite.Require().NoError(o.Advance(o.PlacedAt().Add(10*time.Minute), "Kitchen", nil))
	if status != order.Preparing {
		waypoint, err := kernel.NewRandomWaypoint()
		suite.Require().NoError(err)
		suite.Require().NoError(o.Advance(o.PlacedAt().Add(45*time.Minute), waypoint.Address(), &waypoint))
	}
	if status == order.Delivered {
		suite.Require().NoError(o.Advance(o.PlacedAt().Add(85*time.Minute), "Customer address", nil))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedPlacedOrderAt(placedAt time.Time) *order.Order {
	o := suite.seedablePlacedOrder(placedAt)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedablePlacedOrder(placedAt time.Time) *order.Order {
	email, err := kernel.NewEmail("test@example.com")
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewTrackingNumber(), email, placedAt,
		[]string{"Canape selection"}, placedAt.Add(90*time.Minute))
	suite.Require().NoError(err)
	return o
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
