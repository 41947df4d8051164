package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to delete a line item. The owning
// order must exist; the item delete itself is idempotent.
type RemoveItemCommand struct {
	orderID int
	itemID  int

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove the given item.
func NewRemoveItemCommand(orderID, itemID int) (RemoveItemCommand, error) {
	if orderID <= 0 {
		return RemoveItemCommand{}, errs.NewValueIsInvalidError("order_id")
	}
	if itemID <= 0 {
		return RemoveItemCommand{}, errs.NewValueIsInvalidError("item_id")
	}

	return RemoveItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c RemoveItemCommand) OrderID() int {
	return c.orderID
}

// ItemID returns the identifier of the item to remove.
func (c RemoveItemCommand) ItemID() int {
	return c.itemID
}
