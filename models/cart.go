package models

import "time"

type Cart struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	TotalPrice float64    `gorm:"not null;default:0"`
	Lines      []CartLine `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete lines if cart is deleted
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CartLine records "this item appears in this cart with this quantity".
// The composite key guarantees at most one line per (cart, item) pair; a
// second add must increment Quantity, never insert a duplicate.
type CartLine struct {
	CartID    uint `gorm:"primaryKey;autoIncrement:false"`
	ItemID    uint `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int  `gorm:"not null;default:1"`
	CreatedAt time.Time
}

// CartLineView is the wire shape of a line. Available is derived at read
// time from the referenced item's Deleted flag and is never persisted.
type CartLineView struct {
	ItemID    uint `json:"item_id"`
	CartID    uint `json:"cart_id"`
	Quantity  int  `json:"quantity"`
	Available bool `json:"available"`
}

// CartView is the wire shape of a cart with its lines and running total.
type CartView struct {
	ID    uint           `json:"id"`
	Items []CartLineView `json:"items"`
	Price float64        `json:"price"`
}
