package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is the per-user mutable basket. The row survives checkout, only
// its items are cleared.
type Cart struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string     `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	IsActive  bool       `gorm:"default:true;not null" json:"isActive"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Cart) TableName() string {
	return "carts"
}

type CartItem struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CartID    string    `gorm:"type:uuid;uniqueIndex:idx_cart_book;not null" json:"cartId"`
	BookID    string    `gorm:"type:uuid;uniqueIndex:idx_cart_book;not null" json:"bookId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	Book      *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

func (CartItem) TableName() string {
	return "cart_items"
}
