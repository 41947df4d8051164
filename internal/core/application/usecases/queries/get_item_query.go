package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single item of an order.
type GetItemQuery struct {
	orderID int
	itemID  int

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query for the given item.
func NewGetItemQuery(orderID, itemID int) (GetItemQuery, error) {
	if orderID <= 0 {
		return GetItemQuery{}, errs.NewValueIsInvalidError("order_id")
	}
	if itemID <= 0 {
		return GetItemQuery{}, errs.NewValueIsInvalidError("item_id")
	}

	return GetItemQuery{orderID: orderID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (q GetItemQuery) OrderID() int {
	return q.orderID
}

// ItemID returns the identifier of the item to fetch.
func (q GetItemQuery) ItemID() int {
	return q.itemID
}
