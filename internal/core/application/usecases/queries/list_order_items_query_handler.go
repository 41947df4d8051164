package queries

import (
	"context"
	"strconv"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrderItemsQueryHandler retrieves the items of one order. The order
// must exist; a typed not-found error propagates otherwise.
type ListOrderItemsQueryHandler struct {
	db *gorm.DB
}

// NewListOrderItemsQueryHandler creates a handler for item listing.
func NewListOrderItemsQueryHandler(db *gorm.DB) ListOrderItemsQueryHandler {
	return ListOrderItemsQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice for an order without
// matching items.
func (h ListOrderItemsQueryHandler) Handle(ctx context.Context, query ListOrderItemsQuery) ([]ItemReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := orderExists(ctx, h.db, query.OrderID()); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if productID := query.ProductID(); productID != nil {
		tx = tx.Raw(`
			SELECT id, product_id, price, quantity, order_id, status
			FROM items
			WHERE order_id = ? AND product_id = ?
			ORDER BY id
		`, query.OrderID(), *productID)
	} else {
		tx = tx.Raw(`
			SELECT id, product_id, price, quantity, order_id, status
			FROM items
			WHERE order_id = ?
			ORDER BY id
		`, query.OrderID())
	}

	return scanItems(tx)
}

// orderExists reports a typed not-found error when the order is absent.
func orderExists(ctx context.Context, db *gorm.DB, orderID int) error {
	var count int64
	err := db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE id = ?
	`, orderID).Scan(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", strconv.Itoa(orderID))
	}

	return nil
}
