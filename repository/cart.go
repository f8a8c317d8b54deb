package repository

import (
	"errors"
	"fmt"

	"github.com/akopylov/shop-api/models"
	"gorm.io/gorm"
)

// addItemRetries bounds the internal retry loop when a concurrent insert of
// the same cart line wins the race.
const addItemRetries = 3

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// CartListParams are the paging and filter knobs for List. MinQuantity and
// MaxQuantity are accepted for interface compatibility but are not applied
// as filters.
type CartListParams struct {
	Offset      int
	Limit       int
	MinPrice    *float64
	MaxPrice    *float64
	MinQuantity *int
	MaxQuantity *int
}

// Create persists a new empty cart with a zero total.
func (r *CartRepository) Create() (*models.CartView, error) {
	cart := models.Cart{TotalPrice: 0}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}
	return &models.CartView{ID: cart.ID, Items: make([]models.CartLineView, 0), Price: cart.TotalPrice}, nil
}

// Get returns the cart with its lines and total, or ErrNotFound.
func (r *CartRepository) Get(id uint) (*models.CartView, error) {
	return r.getTx(r.db, id)
}

func (r *CartRepository) getTx(tx *gorm.DB, id uint) (*models.CartView, error) {
	var cart models.Cart
	if err := tx.First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch cart %d: %w", id, err)
	}
	lines, err := r.lines(tx, cart.ID)
	if err != nil {
		return nil, err
	}
	return &models.CartView{ID: cart.ID, Items: lines, Price: cart.TotalPrice}, nil
}

// lines loads a cart's lines joined against items so Available reflects the
// item's current soft-delete state at read time.
func (r *CartRepository) lines(tx *gorm.DB, cartID uint) ([]models.CartLineView, error) {
	lines := make([]models.CartLineView, 0)
	err := tx.Table("cart_lines").
		Select("cart_lines.item_id, cart_lines.cart_id, cart_lines.quantity, NOT items.deleted AS available").
		Joins("JOIN items ON items.id = cart_lines.item_id").
		Where("cart_lines.cart_id = ?", cartID).
		Order("cart_lines.item_id").
		Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("fetch lines of cart %d: %w", cartID, err)
	}
	return lines, nil
}

// List returns a page of carts ordered by ascending id, filtered by the
// optional total-price bounds.
func (r *CartRepository) List(p CartListParams) ([]models.CartView, error) {
	query := r.db.Model(&models.Cart{})
	if p.MinPrice != nil {
		query = query.Where("total_price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		query = query.Where("total_price <= ?", *p.MaxPrice)
	}
	// MinQuantity/MaxQuantity intentionally unused, matching the accepted
	// interface; see DESIGN.md.

	var carts []models.Cart
	if err := query.Order("id").Offset(p.Offset).Limit(p.Limit).Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}

	views := make([]models.CartView, 0, len(carts))
	for _, cart := range carts {
		lines, err := r.lines(r.db, cart.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.CartView{ID: cart.ID, Items: lines, Price: cart.TotalPrice})
	}
	return views, nil
}

// AddItem adds one unit of the item to the cart: an existing line's quantity
// is incremented, otherwise a new line with quantity 1 is created, and the
// cart total grows by the item's current price. The whole mutation commits
// atomically; a lost race against a concurrent insert is retried internally
// before ErrConflict surfaces.
func (r *CartRepository) AddItem(cartID, itemID uint) (*models.CartView, error) {
	var view *models.CartView
	var err error
	for attempt := 0; attempt < addItemRetries; attempt++ {
		view, err = r.addItemOnce(cartID, itemID)
		if !errors.Is(err, ErrConflict) {
			return view, err
		}
	}
	return nil, err
}

func (r *CartRepository) addItemOnce(cartID, itemID uint) (*models.CartView, error) {
	var view *models.CartView
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.First(&cart, cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cart %d: %w", cartID, ErrNotFound)
			}
			return fmt.Errorf("fetch cart %d: %w", cartID, err)
		}

		var item models.Item
		if err := tx.Where("deleted = ?", false).First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d: %w", itemID, ErrNotFound)
			}
			return fmt.Errorf("fetch item %d: %w", itemID, err)
		}

		// Single-statement increment so two concurrent adds can never both
		// read the old quantity and write the same new one.
		res := tx.Model(&models.CartLine{}).
			Where("cart_id = ? AND item_id = ?", cartID, itemID).
			UpdateColumn("quantity", gorm.Expr("quantity + 1"))
		if res.Error != nil {
			return fmt.Errorf("increment line (%d,%d): %w", cartID, itemID, res.Error)
		}
		if res.RowsAffected == 0 {
			line := models.CartLine{CartID: cartID, ItemID: itemID, Quantity: 1}
			if err := tx.Create(&line).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// A concurrent add inserted the line first.
					return ErrConflict
				}
				return fmt.Errorf("create line (%d,%d): %w", cartID, itemID, err)
			}
		}

		if err := tx.Model(&models.Cart{}).Where("id = ?", cartID).
			UpdateColumn("total_price", gorm.Expr("total_price + ?", item.Price)).Error; err != nil {
			return fmt.Errorf("update total of cart %d: %w", cartID, err)
		}

		updated, err := r.getTx(tx, cartID)
		if err != nil {
			return err
		}
		view = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
