package queries

import (
	"context"

	"orders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByDateQueryHandler retrieves orders by exact creation date, with
// their nested items. An empty result is not an error here; the HTTP layer
// decides how to present it.
type GetOrdersByDateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDateQueryHandler creates a handler for date lookups.
func NewGetOrdersByDateQueryHandler(db *gorm.DB) GetOrdersByDateQueryHandler {
	return GetOrdersByDateQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByDateQueryHandler) Handle(ctx context.Context, query GetOrdersByDateQuery) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := scanOrders(h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, date_created
		FROM orders
		WHERE date_created = ?
		ORDER BY id
	`, order.NormalizeDate(query.Date())))
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	grouped, err := loadItemsByOrderIDs(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}
	attachItems(orders, grouped)

	return orders, nil
}
