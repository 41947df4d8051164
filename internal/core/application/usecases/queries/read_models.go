// Package queries contains read operations for retrieving system state.
// Query handlers read directly off the database connection and return flat
// read models, bypassing the domain aggregates.
package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderReadModel is the read-side projection of an order with its nested
// items, shaped for serialization at the HTTP boundary.
type OrderReadModel struct {
	ID          int
	Name        string
	Address     string
	DateCreated time.Time
	Items       []ItemReadModel
}

// ItemReadModel is the read-side projection of an order line item.
type ItemReadModel struct {
	ID        int
	ProductID int
	Price     float64
	Quantity  int
	OrderID   int
	Status    string
}

// scanItems reads item rows from an executed query.
func scanItems(tx *gorm.DB) ([]ItemReadModel, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemReadModel, 0)
	for rows.Next() {
		var it ItemReadModel
		if err = rows.Scan(&it.ID, &it.ProductID, &it.Price, &it.Quantity, &it.OrderID, &it.Status); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// loadItemsByOrderIDs fetches the items of the given orders and groups them
// by order identifier. Orders without items get no map entry; callers treat
// that as an empty collection.
func loadItemsByOrderIDs(ctx context.Context, db *gorm.DB, orderIDs []int) (map[int][]ItemReadModel, error) {
	grouped := make(map[int][]ItemReadModel)
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	items, err := scanItems(db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			price,
			quantity,
			order_id,
			status
		FROM items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs))
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		grouped[it.OrderID] = append(grouped[it.OrderID], it)
	}

	return grouped, nil
}

// scanOrders reads order rows (without items) from an executed query.
func scanOrders(tx *gorm.DB) ([]OrderReadModel, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderReadModel, 0)
	for rows.Next() {
		var o OrderReadModel
		if err = rows.Scan(&o.ID, &o.Name, &o.Address, &o.DateCreated); err != nil {
			return nil, err
		}
		o.Items = make([]ItemReadModel, 0)
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// attachItems fills each order's item collection from the grouped map.
func attachItems(orders []OrderReadModel, grouped map[int][]ItemReadModel) {
	for i := range orders {
		if items, ok := grouped[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}
}
