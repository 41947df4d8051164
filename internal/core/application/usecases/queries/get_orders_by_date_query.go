package queries

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByDateQueryIsNotConstructed = errors.New(
	"GetOrdersByDateQuery must be created via NewGetOrdersByDateQuery constructor",
)

// GetOrdersByDateQuery retrieves the orders created on one exact calendar
// date. No range semantics.
type GetOrdersByDateQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDateQuery creates a query for the given date.
func NewGetOrdersByDateQuery(date time.Time) (GetOrdersByDateQuery, error) {
	if date.IsZero() {
		return GetOrdersByDateQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetOrdersByDateQuery{date: date, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDateQueryIsNotConstructed)
}

// Date returns the queried calendar date.
func (q GetOrdersByDateQuery) Date() time.Time {
	return q.date
}
