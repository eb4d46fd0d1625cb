package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "catertrack/internal/adapters/out/postgres"
	"catertrack/internal/adapters/out/postgres/orderrepo"
	"catertrack/internal/core/domain/model/kernel"
	"catertrack/internal/core/domain/model/order"
	"catertrack/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TrackingEventDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_tracking_events").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommittedChangesPersist verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommittedChangesPersist() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.True(testOrder.TrackingNumber().IsEqual(retrievedOrder.TrackingNumber()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.True(testOrder.TrackingNumber().IsEqual(retrievedOrder.TrackingNumber()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	_, err = uow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify order does not exist after rollback using new unit of work
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)

	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().GetByCredentials(ctx, order1.TrackingNumber(), order1.CustomerEmail())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().GetByCredentials(ctx, order2.TrackingNumber(), order2.CustomerEmail())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().GetByCredentials(ctx, order2.TrackingNumber(), order2.CustomerEmail())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().GetByCredentials(ctx, order1.TrackingNumber(), order1.CustomerEmail())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only order1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().GetByCredentials(ctx, order1.TrackingNumber(), order1.CustomerEmail())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().GetByCredentials(ctx, order2.TrackingNumber(), order2.CustomerEmail())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	// Add order without beginning transaction (should auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order persists immediately
	retrievedOrder, err := uow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.True(testOrder.TrackingNumber().IsEqual(retrievedOrder.TrackingNumber()))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.True(testOrder.TrackingNumber().IsEqual(retrievedOrder.TrackingNumber()))
}

// TestUnitOfWork_OrderLifecycleWorkflow tests the complete order progression
// workflow within transactions, from placement to delivery.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Place a new order
	testOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Step 2: Kitchen starts preparing
	err = testOrder.Advance(time.Now().UTC(), "Kitchen", nil)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Step 3: Order leaves for delivery
	waypoint, err := kernel.NewRandomWaypoint()
	suite.Require().NoError(err)
	err = testOrder.Advance(time.Now().UTC(), waypoint.Address(), &waypoint)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Step 4: Order arrives
	err = testOrder.Advance(time.Now().UTC(), "Customer address", nil)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.Equal(100, retrievedOrder.Progress())
	suite.Nil(retrievedOrder.Location())
	suite.Len(retrievedOrder.History(), 4)
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a progression workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Place the order outside the transaction
	testOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Advance within the transaction, then roll back
	err = testOrder.Advance(time.Now().UTC(), "Kitchen", nil)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// The persisted order must still be in its original status
	newUow := suite.factory.Create()
	retrievedOrder, err := newUow.OrderRepository().GetByCredentials(
		ctx, testOrder.TrackingNumber(), testOrder.CustomerEmail())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, retrievedOrder.Status())
	suite.Len(retrievedOrder.History(), 1)
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial order outside transaction
	existingOrder := createTestOrder()
	err := uow.OrderRepository().Add(ctx, existingOrder)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	newOrder := createTestOrder()
	err = uow.OrderRepository().Add(ctx, newOrder)
	suite.Require().NoError(err)

	// Try to add duplicate order (should fail)
	duplicateOrder, err := order.NewOrder(
		existingOrder.TrackingNumber(), // Same tracking number as existing order
		existingOrder.CustomerEmail(),
		existingOrder.PlacedAt(),
		existingOrder.Items(),
		existingOrder.EstimatedDelivery(),
	)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, duplicateOrder)
	suite.Require().Error(err, "Adding duplicate order should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	// Existing order should still exist (was added before transaction)
	_, err = newUow.OrderRepository().GetByCredentials(
		ctx, existingOrder.TrackingNumber(), existingOrder.CustomerEmail())
	suite.Require().NoError(err, "Existing order should still exist")

	// New order should not exist (transaction was rolled back)
	_, err = newUow.OrderRepository().GetByCredentials(
		ctx, newOrder.TrackingNumber(), newOrder.CustomerEmail())
	suite.Require().Error(err, "New order should not exist after rollback")
}

// TestUnitOfWork_QueryConsistency verifies query results are consistent within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_QueryConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial data outside transaction
	order1 := createTestOrder()
	order2 := createTestOrder()

	err := uow.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Deliver order1 inside the transaction
	waypoint, err := kernel.NewRandomWaypoint()
	suite.Require().NoError(err)
	suite.Require().NoError(order1.Advance(time.Now().UTC(), "Kitchen", nil))
	suite.Require().NoError(order1.Advance(time.Now().UTC(), waypoint.Address(), &waypoint))
	suite.Require().NoError(order1.Advance(time.Now().UTC(), "Customer address", nil))
	err = uow.OrderRepository().Update(ctx, order1)
	suite.Require().NoError(err)

	// Query for undelivered orders - should include order2 but not order1
	undelivered, err := uow.OrderRepository().GetAllUndelivered(ctx)
	suite.Require().NoError(err)
	suite.Len(undelivered, 1)
	suite.True(order2.TrackingNumber().IsEqual(undelivered[0].TrackingNumber()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify queries still return consistent results after commit
	newUow := suite.factory.Create()

	undelivered, err = newUow.OrderRepository().GetAllUndelivered(ctx)
	suite.Require().NoError(err)
	suite.Len(undelivered, 1)
	suite.True(order2.TrackingNumber().IsEqual(undelivered[0].TrackingNumber()))
}

// createTestOrder creates a valid freshly placed order for testing purposes.
func createTestOrder() *order.Order {
	email, _ := kernel.NewEmail("test@example.com")
	placedAt := time.Now().UTC().Add(-time.Hour)
	testOrder, _ := order.NewOrder(
		kernel.NewTrackingNumber(),
		email,
		placedAt,
		[]string{"Wedding buffet"},
		placedAt.Add(90*time.Minute),
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
