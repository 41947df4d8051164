package itemrepo

import (
	"context"
	"errors"
	"strconv"

	"orders/internal/core/domain/model/item"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add inserts a new item row and feeds the generated identifier back into
// the entity.
func (r *GormItemRepository) Add(ctx context.Context, entity *item.Item) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	dto.ID = 0 // identity is database-assigned
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return entity.AssignID(dto.ID)
}

// Update persists the entity's current field values to its existing row.
// Returns gorm.ErrRecordNotFound when the row does not exist.
func (r *GormItemRepository) Update(ctx context.Context, entity *item.Item) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("product_id", "price", "quantity", "order_id", "status").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes the item row. Unknown identifiers are a no-op.
func (r *GormItemRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&ItemDTO{}, id).Error
}

// DeleteByOrderID removes every item belonging to the given order. Backs the
// order-deletion cascade.
func (r *GormItemRepository) DeleteByOrderID(ctx context.Context, orderID int) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&ItemDTO{}).Error
}

// Get retrieves an item by identifier.
func (r *GormItemRepository) Get(ctx context.Context, id int) (*item.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", strconv.Itoa(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every item, ordered by identifier.
func (r *GormItemRepository) GetAll(ctx context.Context) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByOrderID retrieves all items belonging to the given order.
func (r *GormItemRepository) GetByOrderID(ctx context.Context, orderID int) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByProductID retrieves all items referencing the given product.
func (r *GormItemRepository) GetByProductID(ctx context.Context, productID int) ([]*item.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByPriceRange retrieves all items priced within [minPrice, maxPrice].
// Both bounds are inclusive.
func (r *GormItemRepository) GetByPriceRange(
	ctx context.Context, minPrice, maxPrice float64,
) ([]*item.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).Order("id").
		Find(&dtos, "price >= ? AND price <= ?", minPrice, maxPrice).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ItemDTO) ([]*item.Item, error) {
	items := make([]*item.Item, 0, len(dtos))
	for _, dto := range dtos {
		it, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, nil
}
