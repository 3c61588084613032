package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wishlist struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex:idx_user_book;not null" json:"userId"`
	BookID    string    `gorm:"type:uuid;uniqueIndex:idx_user_book;not null" json:"bookId"`
	Book      *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}

func (Wishlist) TableName() string {
	return "wishlists"
}
