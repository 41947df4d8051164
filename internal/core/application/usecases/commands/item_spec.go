package commands

import (
	"orders/internal/core/domain/model/item"
	"orders/internal/pkg/errs"
)

// ItemSpec carries the caller-supplied fields of a line item into a command.
// Quantity zero means "not supplied" and falls back to the item default.
type ItemSpec struct {
	ProductID int
	Price     float64
	Quantity  int
	Status    string
}

// Validate checks the presence rules for a spec: status is the only field
// with a presence requirement at this level, matching the item entity.
func (s ItemSpec) Validate() error {
	if s.Status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// toItem builds a fresh Item entity from the spec.
func (s ItemSpec) toItem() (*item.Item, error) {
	return item.NewItem(s.ProductID, s.Price, s.Quantity, s.Status)
}
