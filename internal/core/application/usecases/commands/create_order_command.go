package commands

import (
	"errors"
	"time"

	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order, optionally
// with nested line items. Name and address may be empty; the aggregate
// applies its defaults. A zero date means "today".
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("A", "1 Main St", time.Time{}, nil)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	name        string
	address     string
	dateCreated time.Time
	items       []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. Each
// nested item spec must carry a status.
func NewCreateOrderCommand(name, address string, dateCreated time.Time, items []ItemSpec) (CreateOrderCommand, error) {
	for _, spec := range items {
		if err := spec.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		name:        name,
		address:     address,
		dateCreated: dateCreated,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Name returns the order name, possibly empty.
func (c CreateOrderCommand) Name() string {
	return c.name
}

// Address returns the delivery address, possibly empty.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DateCreated returns the requested creation date, zero when defaulted.
func (c CreateOrderCommand) DateCreated() time.Time {
	return c.dateCreated
}

// Items returns the nested item specs.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}
