package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersByPriceRangeQueryIsNotConstructed = errors.New(
	"GetOrdersByPriceRangeQuery must be created via NewGetOrdersByPriceRangeQuery constructor",
)

// GetOrdersByPriceRangeQuery retrieves the orders that have at least one item
// priced inside an inclusive [min, max] range.
type GetOrdersByPriceRangeQuery struct {
	minPrice float64
	maxPrice float64

	guard guard.ConstructorGuard
}

// NewGetOrdersByPriceRangeQuery creates a query for the given inclusive range.
func NewGetOrdersByPriceRangeQuery(minPrice, maxPrice float64) (GetOrdersByPriceRangeQuery, error) {
	if minPrice > maxPrice {
		return GetOrdersByPriceRangeQuery{}, errs.NewValueIsOutOfRangeError("min_price", minPrice, minPrice, maxPrice)
	}

	return GetOrdersByPriceRangeQuery{
		minPrice: minPrice,
		maxPrice: maxPrice,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByPriceRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPriceRangeQueryIsNotConstructed)
}

// MinPrice returns the inclusive lower bound.
func (q GetOrdersByPriceRangeQuery) MinPrice() float64 {
	return q.minPrice
}

// MaxPrice returns the inclusive upper bound.
func (q GetOrdersByPriceRangeQuery) MaxPrice() float64 {
	return q.maxPrice
}
