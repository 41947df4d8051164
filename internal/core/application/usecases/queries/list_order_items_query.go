package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrListOrderItemsQueryIsNotConstructed = errors.New(
	"ListOrderItemsQuery must be created via NewListOrderItemsQuery constructor",
)

// ListOrderItemsQuery retrieves the items of one order, optionally filtered
// by product identifier.
type ListOrderItemsQuery struct {
	orderID   int
	productID *int

	guard guard.ConstructorGuard
}

// NewListOrderItemsQuery creates a query for all items of the given order.
func NewListOrderItemsQuery(orderID int) (ListOrderItemsQuery, error) {
	if orderID <= 0 {
		return ListOrderItemsQuery{}, errs.NewValueIsInvalidError("order_id")
	}

	return ListOrderItemsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewListOrderItemsQueryWithProductID creates a query filtered to items of
// one product.
func NewListOrderItemsQueryWithProductID(orderID, productID int) (ListOrderItemsQuery, error) {
	q, err := NewListOrderItemsQuery(orderID)
	if err != nil {
		return ListOrderItemsQuery{}, err
	}

	q.productID = &productID
	return q, nil
}

// Validate ensures the query was created through a constructor.
func (q ListOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (q ListOrderItemsQuery) OrderID() int {
	return q.orderID
}

// ProductID returns the product filter, nil when listing everything.
func (q ListOrderItemsQuery) ProductID() *int {
	return q.productID
}
