package commands

import (
	"context"

	"orders/internal/core/domain/model/item"
)

// UpdateItemCommandHandler overwrites an item's fields. Both the order and
// the item must exist; typed not-found errors propagate otherwise. Returns
// the updated item.
type UpdateItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item updates.
func NewUpdateItemCommandHandler(uowFactory UoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the item update command.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*item.Item, error) {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	itemRepo := uow.ItemRepository()
	it, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	spec := cmd.Spec()
	if err = it.Overwrite(spec.ProductID, spec.Price, spec.Quantity, spec.Status); err != nil {
		return nil, err
	}
	if err = itemRepo.Update(ctx, it); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return it, nil
}
