package commands

import (
	"context"
)

// RemoveItemCommandHandler deletes an item from an order. The order must
// exist (typed not-found error otherwise); deleting an unknown item is a
// no-op, matching the route's idempotent 204.
type RemoveItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal.
func NewRemoveItemCommandHandler(uowFactory UoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the item removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}
	if err := uow.ItemRepository().Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
