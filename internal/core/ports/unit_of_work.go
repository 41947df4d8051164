package ports

import "context"

// UnitOfWork coordinates a database transaction across the order and item
// repositories. Begin is idempotent; Commit and Rollback close the current
// transaction. Repositories obtained from an active unit of work operate
// inside its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() OrderRepository
	ItemRepository() ItemRepository
}

// UnitOfWorkFactory produces fresh, isolated UnitOfWork instances.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
