package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, items").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ItemRepository(), "First instance should provide item repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.ItemRepository(), "Second instance should provide item repository")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackWithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Rollback(ctx)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Commit_PersistsOrderAndItems() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newTestOrder("Alice", "12 Oak St")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testItem := suite.newTestItem(testOrder.ID(), 101, 9.99)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, testItem))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertRowCount(&orderrepo.OrderDTO{}, 1)
	suite.assertRowCount(&itemrepo.ItemDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Rollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.newTestOrder("Alice", "12 Oak St")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testItem := suite.newTestItem(testOrder.ID(), 101, 9.99)
	suite.Require().NoError(uow.ItemRepository().Add(ctx, testItem))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertRowCount(&orderrepo.OrderDTO{}, 0)
	suite.assertRowCount(&itemrepo.ItemDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoriesWithoutTransaction_WriteDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// No Begin: writes go straight to the shared connection.
	testOrder := suite.newTestOrder("Bob", "34 Elm St")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.assertRowCount(&orderrepo.OrderDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder(name, address string) *order.Order {
	testOrder, err := order.NewOrder(name, address, time.Now())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestItem(orderID, productID int, price float64) *item.Item {
	testItem, err := item.NewItem(productID, price, 1, "placed")
	suite.Require().NoError(err)
	suite.Require().NoError(testItem.AssignToOrder(orderID))
	return testItem
}

func (suite *UnitOfWorkIntegrationTestSuite) assertRowCount(model any, expected int) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
