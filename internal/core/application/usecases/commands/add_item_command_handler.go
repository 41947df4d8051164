package commands

import (
	"context"

	"orders/internal/core/domain/model/item"
)

// AddItemCommandHandler creates a new item under an existing order. The
// order must exist; a typed not-found error propagates otherwise. Returns
// the stored item with its database-assigned identifier.
type AddItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddItemCommandHandler creates a handler for item creation.
func NewAddItemCommandHandler(uowFactory UoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the item creation command.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*item.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Existence check drives the route's 404 for unknown orders.
	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	it, err := cmd.Spec().toItem()
	if err != nil {
		return nil, err
	}
	if err = it.AssignToOrder(cmd.OrderID()); err != nil {
		return nil, err
	}

	if err = uow.ItemRepository().Add(ctx, it); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return it, nil
}
