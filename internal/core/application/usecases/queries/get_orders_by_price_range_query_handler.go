package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByPriceRangeQueryHandler retrieves orders containing items inside
// an inclusive price range. Each returned order nests only the items that
// match the range, not the full item set.
type GetOrdersByPriceRangeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByPriceRangeQueryHandler creates a handler for price lookups.
func NewGetOrdersByPriceRangeQueryHandler(db *gorm.DB) GetOrdersByPriceRangeQueryHandler {
	return GetOrdersByPriceRangeQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByPriceRangeQueryHandler) Handle(
	ctx context.Context, query GetOrdersByPriceRangeQuery,
) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := scanItems(h.db.WithContext(ctx).Raw(`
		SELECT id, product_id, price, quantity, order_id, status
		FROM items
		WHERE price >= ? AND price <= ?
		ORDER BY order_id, id
	`, query.MinPrice(), query.MaxPrice()))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []OrderReadModel{}, nil
	}

	grouped := make(map[int][]ItemReadModel)
	ids := make([]int, 0, len(items))
	for _, it := range items {
		if _, ok := grouped[it.OrderID]; !ok {
			ids = append(ids, it.OrderID)
		}
		grouped[it.OrderID] = append(grouped[it.OrderID], it)
	}

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, date_created
		FROM orders
		WHERE id IN ?
		ORDER BY id
	`, ids))
	if err != nil {
		return nil, err
	}
	attachItems(orders, grouped)

	return orders, nil
}
