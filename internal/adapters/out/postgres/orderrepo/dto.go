// Package orderrepo implements OrderRepository on GORM, mapping between the
// Order aggregate and its relational representation.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order. Items live in their own table
// keyed by order_id and are not eagerly loaded here; the aggregate's item
// collection is derived by the callers that need it.
type OrderDTO struct {
	ID          int       `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:63"`
	Address     string    `gorm:"size:127;not null"`
	DateCreated time.Time `gorm:"type:date;not null;index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		DateCreated: aggregate.DateCreated(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.Name, dto.Address, dto.DateCreated, nil)
}
