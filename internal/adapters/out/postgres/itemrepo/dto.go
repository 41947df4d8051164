// Package itemrepo implements ItemRepository on GORM, mapping between the
// Item entity and its relational representation.
package itemrepo

import (
	"orders/internal/core/domain/model/item"
)

// ItemDTO is the database row for an order line item. OrderID references
// orders.id; it is nullable only transiently, before the item is bound to
// its order on insert.
type ItemDTO struct {
	ID        int     `gorm:"primaryKey;autoIncrement"`
	ProductID int     `gorm:"not null;index"`
	Price     float64 `gorm:"not null;index"`
	Quantity  int     `gorm:"not null;default:1"`
	OrderID   int     `gorm:"index"`
	Status    string  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(entity *item.Item) ItemDTO {
	return ItemDTO{
		ID:        entity.ID(),
		ProductID: entity.ProductID(),
		Price:     entity.Price(),
		Quantity:  entity.Quantity(),
		OrderID:   entity.OrderID(),
		Status:    entity.Status(),
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	return item.RestoreItem(dto.ID, dto.ProductID, dto.Price, dto.Quantity, dto.OrderID, dto.Status)
}
