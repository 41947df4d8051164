package queries

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its items. Returns a
// typed not-found error for unknown identifiers.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return OrderReadModel{}, err
	}

	var o OrderReadModel
	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address, date_created
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	if err := row.Scan(&o.ID, &o.Name, &o.Address, &o.DateCreated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderReadModel{}, errs.NewObjectNotFoundError("order", strconv.Itoa(query.OrderID()))
		}
		return OrderReadModel{}, err
	}

	grouped, err := loadItemsByOrderIDs(ctx, h.db, []int{o.ID})
	if err != nil {
		return OrderReadModel{}, err
	}
	o.Items = make([]ItemReadModel, 0)
	if items, ok := grouped[o.ID]; ok {
		o.Items = items
	}

	return o, nil
}
