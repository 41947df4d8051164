package commands

import (
	"errors"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to overwrite an existing order's
// fields. A zero date keeps the stored creation date.
type UpdateOrderCommand struct {
	orderID     int
	name        string
	address     string
	dateCreated time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update the given order.
func NewUpdateOrderCommand(orderID int, name, address string, dateCreated time.Time) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsInvalidError("order_id")
	}

	return UpdateOrderCommand{
		orderID:     orderID,
		name:        name,
		address:     address,
		dateCreated: dateCreated,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int {
	return c.orderID
}

// Name returns the replacement name.
func (c UpdateOrderCommand) Name() string {
	return c.name
}

// Address returns the replacement address, possibly empty.
func (c UpdateOrderCommand) Address() string {
	return c.address
}

// DateCreated returns the replacement date, zero to keep the stored one.
func (c UpdateOrderCommand) DateCreated() time.Time {
	return c.dateCreated
}
