package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/item"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	itemRepo  *itemrepo.GormItemRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &itemrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
	suite.itemRepo = itemrepo.NewGormItemRepository(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, items").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersWithNestedItems() {
	first := suite.createOrder("Alice", "12 Oak St")
	second := suite.createOrder("Bob", "34 Elm St")
	suite.createItem(first.ID(), 101, 9.99, 2, "placed")
	suite.createItem(first.ID(), 102, 4.50, 1, "placed")
	suite.createItem(second.ID(), 103, 19.99, 1, "shipped")

	query := queries.NewListOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	byID := make(map[int]queries.OrderReadModel)
	for _, o := range result {
		byID[o.ID] = o
	}

	suite.Len(byID[first.ID()].Items, 2)
	suite.Len(byID[second.ID()].Items, 1)
	suite.Equal("Alice", byID[first.ID()].Name)
	suite.Equal(103, byID[second.ID()].Items[0].ProductID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_OrderWithoutItems_ReturnsEmptyItemSlice() {
	created := suite.createOrder("Carol", "56 Pine St")

	query := queries.NewListOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(created.ID(), result[0].ID)
	suite.NotNil(result[0].Items)
	suite.Empty(result[0].Items)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NameFilter_ReturnsOnlyMatchingOrders() {
	matching := suite.createOrder("Dave", "78 Birch St")
	suite.createOrder("Erin", "90 Cedar St")

	query := queries.NewListOrdersQueryWithName("Dave")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(matching.ID(), result[0].ID)
	suite.Equal("Dave", result[0].Name)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NameFilter_NoMatch_ReturnsEmptySlice() {
	suite.createOrder("Frank", "11 Maple St")

	query := queries.NewListOrdersQueryWithName("Grace")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) createOrder(name, address string) *order.Order {
	aggregate, err := order.NewOrder(name, address, time.Now())
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ListOrdersQueryHandlerTestSuite) createItem(
	orderID, productID int, price float64, quantity int, status string,
) *item.Item {
	it, err := item.NewItem(productID, price, quantity, status)
	suite.Require().NoError(err)
	err = it.AssignToOrder(orderID)
	suite.Require().NoError(err)
	err = suite.itemRepo.Add(context.Background(), it)
	suite.Require().NoError(err)

	return it
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
