package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to overwrite a line item's fields.
// The item keeps its identity and stays in its order.
type UpdateItemCommand struct {
	orderID int
	itemID  int
	spec    ItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update the given item.
func NewUpdateItemCommand(orderID, itemID int, spec ItemSpec) (UpdateItemCommand, error) {
	if orderID <= 0 {
		return UpdateItemCommand{}, errs.NewValueIsInvalidError("order_id")
	}
	if itemID <= 0 {
		return UpdateItemCommand{}, errs.NewValueIsInvalidError("item_id")
	}
	if err := spec.Validate(); err != nil {
		return UpdateItemCommand{}, err
	}

	return UpdateItemCommand{
		orderID: orderID,
		itemID:  itemID,
		spec:    spec,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c UpdateItemCommand) OrderID() int {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() int {
	return c.itemID
}

// Spec returns the replacement item fields.
func (c UpdateItemCommand) Spec() ItemSpec {
	return c.spec
}
