package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order together with its nested
// items in one transaction. Returns the stored aggregate so callers can see
// the database-assigned identifiers.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.Name(), cmd.Address(), cmd.DateCreated())
	if err != nil {
		return nil, err
	}
	for _, spec := range cmd.Items() {
		it, itemErr := spec.toItem()
		if itemErr != nil {
			return nil, itemErr
		}
		if itemErr = aggregate.AddItem(it); itemErr != nil {
			return nil, itemErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	itemRepo := uow.ItemRepository()
	for _, it := range aggregate.Items() {
		if err = itemRepo.Add(ctx, it); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
