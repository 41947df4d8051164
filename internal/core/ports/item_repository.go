package ports

import (
	"context"

	"orders/internal/core/domain/model/item"
)

// ItemRepository persists and retrieves Item entities. Semantics mirror
// OrderRepository: Add feeds the generated identifier back, Update requires
// an existing row, deletes are idempotent. GetByPriceRange bounds are
// inclusive on both ends. DeleteByOrderID backs the order-deletion cascade.
type ItemRepository interface {
	Add(ctx context.Context, entity *item.Item) error
	Update(ctx context.Context, entity *item.Item) error
	Delete(ctx context.Context, id int) error
	DeleteByOrderID(ctx context.Context, orderID int) error
	Get(ctx context.Context, id int) (*item.Item, error)
	GetAll(ctx context.Context) ([]*item.Item, error)
	GetByOrderID(ctx context.Context, orderID int) ([]*item.Item, error)
	GetByProductID(ctx context.Context, productID int) ([]*item.Item, error)
	GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*item.Item, error)
}
