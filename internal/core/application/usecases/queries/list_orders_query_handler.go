package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders with their nested items.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if name := query.Name(); name != nil {
		tx = tx.Raw(`
			SELECT id, name, address, date_created
			FROM orders
			WHERE name = ?
			ORDER BY id
		`, *name)
	} else {
		tx = tx.Raw(`
			SELECT id, name, address, date_created
			FROM orders
			ORDER BY id
		`)
	}

	orders, err := scanOrders(tx)
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
