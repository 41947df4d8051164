package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemQueryHandler retrieves a single item. Both the order and the item
// must exist; typed not-found errors propagate otherwise.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for single-item retrieval.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the query.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemReadModel, error) {
	if err := query.Validate(); err != nil {
		return ItemReadModel{}, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return ItemReadModel{}, err
	}

	var it ItemReadModel
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, product_id, price, quantity, order_id, status
		FROM items
		WHERE id = ?
	`, query.ItemID()).Row()

	if err := row.Scan(&it.ID, &it.ProductID, &it.Price, &it.Quantity, &it.OrderID, &it.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ItemReadModel{}, errs.NewObjectNotFoundError("item", strconv.Itoa(query.ItemID()))
		}
		return ItemReadModel{}, err
	}

	return it, nil
}
