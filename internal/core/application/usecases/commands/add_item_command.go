package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a line item to an existing
// order.
type AddItemCommand struct {
	orderID int
	spec    ItemSpec

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to the given order.
func NewAddItemCommand(orderID int, spec ItemSpec) (AddItemCommand, error) {
	if orderID <= 0 {
		return AddItemCommand{}, errs.NewValueIsInvalidError("order_id")
	}
	if err := spec.Validate(); err != nil {
		return AddItemCommand{}, err
	}

	return AddItemCommand{
		orderID: orderID,
		spec:    spec,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c AddItemCommand) OrderID() int {
	return c.orderID
}

// Spec returns the caller-supplied item fields.
func (c AddItemCommand) Spec() ItemSpec {
	return c.spec
}
