// Package ports defines the interfaces between the application core and its
// adapters: repositories for persistence and the unit of work for
// transaction management.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderRepository persists and retrieves Order aggregates. Add assigns the
// database-generated identifier back onto the aggregate. Update reports
// gorm.ErrRecordNotFound when no row matched, so callers pre-check
// existence. Delete is a no-op for unknown identifiers.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Delete(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
	GetByName(ctx context.Context, name string) ([]*order.Order, error)
	GetByDate(ctx context.Context, date time.Time) ([]*order.Order, error)
}
