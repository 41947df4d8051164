package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves all orders, optionally filtered by exact name.
//
// Example:
//
//	query := NewListOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	name *string

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the complete order list.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListOrdersQueryWithName creates a query filtered to orders with the
// exact given name.
func NewListOrdersQueryWithName(name string) ListOrdersQuery {
	return ListOrdersQuery{name: &name, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Name returns the name filter, nil when listing everything.
func (q ListOrdersQuery) Name() *string {
	return q.name
}
