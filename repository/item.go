package repository

import (
	"errors"
	"fmt"

	"github.com/akopylov/shop-api/models"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// ItemListParams are the paging and filter knobs for List. Nil price bounds
// mean unbounded; both bounds are inclusive.
type ItemListParams struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	ShowDeleted bool
}

// Get returns the item, or ErrNotFound if it is absent or soft-deleted.
func (r *ItemRepository) Get(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Where("deleted = ?", false).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch item %d: %w", id, err)
	}
	return &item, nil
}

// List returns a page of items ordered by ascending id.
func (r *ItemRepository) List(p ItemListParams) ([]models.Item, error) {
	query := r.db.Model(&models.Item{})
	if !p.ShowDeleted {
		query = query.Where("deleted = ?", false)
	}
	if p.MinPrice != nil {
		query = query.Where("price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("price <= ?", *p.MaxPrice)
	}

	items := make([]models.Item, 0)
	if err := query.Order("id").Offset(p.Offset).Limit(p.Limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create persists a new non-deleted item and returns it with its assigned id.
func (r *ItemRepository) Create(name string, price float64) (*models.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item name must not be empty: %w", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("item price must not be negative: %w", ErrValidation)
	}

	item := models.Item{Name: name, Price: price}
	if err := r.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &item, nil
}

// Replace overwrites all mutable fields of the item. Setting deleted through
// this path is allowed even though SoftDelete exists separately. Returns
// ErrNotFound if no non-deleted item with that id exists.
func (r *ItemRepository) Replace(id uint, name string, price float64, deleted bool) (*models.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("item name must not be empty: %w", ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("item price must not be negative: %w", ErrValidation)
	}

	item, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	item.Name = name
	item.Price = price
	item.Deleted = deleted
	if err := r.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("replace item %d: %w", id, err)
	}
	return item, nil
}

// Patch overwrites only the provided fields; nil fields are left unchanged.
// Returns ErrNotFound if no non-deleted item with that id exists.
func (r *ItemRepository) Patch(id uint, name *string, price *float64) (*models.Item, error) {
	if name != nil && *name == "" {
		return nil, fmt.Errorf("item name must not be empty: %w", ErrValidation)
	}
	if price != nil && *price < 0 {
		return nil, fmt.Errorf("item price must not be negative: %w", ErrValidation)
	}

	item, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		item.Name = *name
	}
	if price != nil {
		item.Price = *price
	}
	if err := r.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("patch item %d: %w", id, err)
	}
	return item, nil
}

// SoftDelete flags the item as deleted. Idempotent; a missing id is a no-op,
// not an error.
func (r *ItemRepository) SoftDelete(id uint) error {
	err := r.db.Model(&models.Item{}).Where("id = ?", id).Update("deleted", true).Error
	if err != nil {
		return fmt.Errorf("soft-delete item %d: %w", id, err)
	}
	return nil
}
