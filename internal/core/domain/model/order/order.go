package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/item"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// NoAddress is the sentinel stored when a caller omits the address.
const NoAddress = "no address"

// Order is the aggregate root for a customer purchase. It owns zero or more
// items; the item collection is derived from the items table by order_id and
// is only populated on the paths that need it.
//
// Invariants:
//   - the identifier is database-assigned and set exactly once
//   - address is never empty (NoAddress stands in for an omitted one)
//   - date_created is a calendar date, normalized to midnight UTC
type Order struct {
	id          int
	name        string
	address     string
	dateCreated time.Time
	items       []*item.Item

	guard guard.ConstructorGuard
}

// NewOrder creates an Order that has not been persisted yet. Name may be
// empty. An empty address falls back to NoAddress; a zero date falls back to
// today.
func NewOrder(name, address string, dateCreated time.Time) (*Order, error) {
	if address == "" {
		address = NoAddress
	}
	if dateCreated.IsZero() {
		dateCreated = time.Now().UTC()
	}

	return &Order{
		name:        name,
		address:     address,
		dateCreated: NormalizeDate(dateCreated),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an Order from persisted state.
func RestoreOrder(id int, name, address string, dateCreated time.Time, items []*item.Item) (*Order, error) {
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}
	if dateCreated.IsZero() {
		return nil, errs.NewValueIsRequiredError("date_created")
	}

	return &Order{
		id:          id,
		name:        name,
		address:     address,
		dateCreated: NormalizeDate(dateCreated),
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NormalizeDate truncates a timestamp to its calendar date in UTC. The
// date_created column is a date, so comparisons go through this form.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the database-assigned identifier, zero before the first insert.
func (o *Order) ID() int {
	return o.id
}

// Name returns the customer-supplied order name, possibly empty.
func (o *Order) Name() string {
	return o.name
}

// Address returns the delivery address, NoAddress when none was supplied.
func (o *Order) Address() string {
	return o.address
}

// DateCreated returns the calendar date the order was placed.
func (o *Order) DateCreated() time.Time {
	return o.dateCreated
}

// Items returns the loaded item collection. It is empty unless the order was
// built or restored with items.
func (o *Order) Items() []*item.Item {
	return o.items
}

// AssignID records the identifier the database generated on insert and binds
// any already-attached items to it. Reassigning a different identifier is an
// error.
func (o *Order) AssignID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if o.id != 0 && o.id != id {
		return errs.NewValueIsInvalidError("id")
	}

	o.id = id
	for _, it := range o.items {
		if err := it.AssignToOrder(id); err != nil {
			return err
		}
	}
	return nil
}

// AddItem attaches an item to the order. If the order already has an
// identifier the item is bound to it immediately.
func (o *Order) AddItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if o.id != 0 {
		if err := it.AssignToOrder(o.id); err != nil {
			return err
		}
	}

	o.items = append(o.items, it)
	return nil
}

// Overwrite replaces the mutable fields from an update payload. A zero date
// keeps the stored one; an empty address falls back to NoAddress, matching
// creation semantics.
func (o *Order) Overwrite(name, address string, dateCreated time.Time) error {
	if address == "" {
		address = NoAddress
	}

	o.name = name
	o.address = address
	if !dateCreated.IsZero() {
		o.dateCreated = NormalizeDate(dateCreated)
	}
	return nil
}
