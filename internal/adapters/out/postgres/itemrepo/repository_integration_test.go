package itemrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/itemrepo"
	"orders/internal/core/domain/model/item"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ItemRepositoryIntegrationTestSuite provides integration tests for
// ItemRepository using PostgreSQL containers to verify persistence behavior.
type ItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *itemrepo.GormItemRepository
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&itemrepo.ItemDTO{}))
}

func (suite *ItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items").Error)
	suite.repository = itemrepo.NewGormItemRepository(suite.db)
}

func (suite *ItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ItemRepositoryIntegrationTestSuite) TestAdd_ValidItem_AssignsGeneratedID() {
	ctx := context.Background()

	testItem := suite.createTestItem(1, 101, 9.99, 2, "placed")

	err := suite.repository.Add(ctx, testItem)
	suite.Require().NoError(err)

	suite.Positive(testItem.ID())
	suite.assertItemCount(1)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_ExistingItem_ReturnsItem() {
	ctx := context.Background()

	original := suite.createTestItem(1, 101, 9.99, 2, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(101, retrieved.ProductID())
	suite.InDelta(9.99, retrieved.Price(), 0.0001)
	suite.Equal(2, retrieved.Quantity())
	suite.Equal(1, retrieved.OrderID())
	suite.Equal("placed", retrieved.Status())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGet_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_ExistingItem_PersistsNewFields() {
	ctx := context.Background()

	original := suite.createTestItem(1, 101, 9.99, 2, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.Overwrite(102, 14.99, 3, "shipped"))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(102, retrieved.ProductID())
	suite.InDelta(14.99, retrieved.Price(), 0.0001)
	suite.Equal(3, retrieved.Quantity())
	suite.Equal("shipped", retrieved.Status())
	suite.Equal(1, retrieved.OrderID())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestUpdate_NonExistentItem_ReturnsRecordNotFound() {
	ctx := context.Background()

	ghost, err := item.RestoreItem(424242, 101, 9.99, 2, 1, "placed")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestDelete_ExistingItem_RemovesRow() {
	ctx := context.Background()

	testItem := suite.createTestItem(1, 101, 9.99, 2, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, testItem))

	suite.Require().NoError(suite.repository.Delete(ctx, testItem.ID()))
	suite.assertItemCount(0)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestDelete_NonExistentItem_IsNoOp() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, 424242)
	suite.Require().NoError(err)
}

func (suite *ItemRepositoryIntegrationTestSuite) TestDeleteByOrderID_RemovesOnlyThatOrdersItems() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(1, 101, 9.99, 2, "placed")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(1, 102, 4.50, 1, "placed")))
	survivor := suite.createTestItem(2, 103, 19.99, 1, "shipped")
	suite.Require().NoError(suite.repository.Add(ctx, survivor))

	suite.Require().NoError(suite.repository.DeleteByOrderID(ctx, 1))

	remaining, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(survivor.ID(), remaining[0].ID())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetByOrderID_ReturnsOnlyThatOrdersItems() {
	ctx := context.Background()

	first := suite.createTestItem(1, 101, 9.99, 2, "placed")
	second := suite.createTestItem(1, 102, 4.50, 1, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(2, 103, 19.99, 1, "shipped")))

	found, err := suite.repository.GetByOrderID(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal(first.ID(), found[0].ID())
	suite.Equal(second.ID(), found[1].ID())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetByProductID_ReturnsMatchingItems() {
	ctx := context.Background()

	matching := suite.createTestItem(1, 101, 9.99, 2, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, matching))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(2, 102, 4.50, 1, "placed")))

	found, err := suite.repository.GetByProductID(ctx, 101)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(matching.ID(), found[0].ID())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetByPriceRange_BoundsAreInclusive() {
	ctx := context.Background()

	lower := suite.createTestItem(1, 101, 10.0, 1, "placed")
	upper := suite.createTestItem(1, 102, 50.0, 1, "placed")
	suite.Require().NoError(suite.repository.Add(ctx, lower))
	suite.Require().NoError(suite.repository.Add(ctx, upper))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(1, 103, 9.99, 1, "placed")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(1, 104, 50.01, 1, "placed")))

	found, err := suite.repository.GetByPriceRange(ctx, 10.0, 50.0)
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal(lower.ID(), found[0].ID())
	suite.Equal(upper.ID(), found[1].ID())
}

func (suite *ItemRepositoryIntegrationTestSuite) TestGetByPriceRange_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestItem(1, 101, 99.99, 1, "placed")))

	found, err := suite.repository.GetByPriceRange(ctx, 1.0, 10.0)
	suite.Require().NoError(err)
	suite.NotNil(found)
	suite.Empty(found)
}

// createTestItem creates a test item bound to the given order.
func (suite *ItemRepositoryIntegrationTestSuite) createTestItem(
	orderID, productID int, price float64, quantity int, status string,
) *item.Item {
	testItem, err := item.NewItem(productID, price, quantity, status)
	suite.Require().NoError(err)
	suite.Require().NoError(testItem.AssignToOrder(orderID))
	return testItem
}

// assertItemCount verifies the number of items in the database.
func (suite *ItemRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&itemrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryIntegrationTestSuite))
}
