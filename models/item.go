package models

import "time"

// Item is a purchasable good. Deletion is logical: the Deleted flag hides the
// row from default lookups and listings but the record is never removed, so
// carts that already reference it keep their lines.
type Item struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
