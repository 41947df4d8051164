// Package item contains the Item entity, a single product line within an
// order. Items carry a product reference, unit price, quantity, and a
// free-form fulfillment status.
package item

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// DefaultQuantity is used when a caller does not supply a quantity.
const DefaultQuantity = 1

// Item represents a line entry within an order. The identifier is assigned
// by the database on insert; until then ID() is zero. Price and quantity are
// deliberately unconstrained beyond presence (last word from the product
// side: no non-negativity rules).
type Item struct {
	id        int
	productID int
	price     float64
	quantity  int
	orderID   int
	status    string

	guard guard.ConstructorGuard
}

// NewItem creates an Item that has not been persisted yet. Status is
// required; a non-positive quantity falls back to DefaultQuantity.
func NewItem(productID int, price float64, quantity int, status string) (*Item, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if quantity <= 0 {
		quantity = DefaultQuantity
	}

	return &Item{
		productID: productID,
		price:     price,
		quantity:  quantity,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an Item from persisted state.
func RestoreItem(id, productID int, price float64, quantity, orderID int, status string) (*Item, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &Item{
		id:        id,
		productID: productID,
		price:     price,
		quantity:  quantity,
		orderID:   orderID,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the database-assigned identifier, zero before the first insert.
func (i *Item) ID() int {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() int {
	return i.productID
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// OrderID returns the owning order's identifier, zero while unassigned.
func (i *Item) OrderID() int {
	return i.orderID
}

// Status returns the free-form fulfillment status.
func (i *Item) Status() string {
	return i.status
}

// AssignID records the identifier the database generated on insert.
// Reassigning a different identifier is an error.
func (i *Item) AssignID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if i.id != 0 && i.id != id {
		return errs.NewValueIsInvalidError("id")
	}
	i.id = id
	return nil
}

// AssignToOrder binds the item to its owning order.
func (i *Item) AssignToOrder(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order_id")
	}
	i.orderID = orderID
	return nil
}

// Overwrite replaces the mutable fields from an update payload. The item
// keeps its identity and its owning order.
func (i *Item) Overwrite(productID int, price float64, quantity int, status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if quantity <= 0 {
		quantity = DefaultQuantity
	}

	i.productID = productID
	i.price = price
	i.quantity = quantity
	i.status = status
	return nil
}
