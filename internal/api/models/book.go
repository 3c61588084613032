package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book carries both the loan stock (Quantity/Available) and the sale
// listing (Price/IsForSale). Available must stay within [0, Quantity].
type Book struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Author     string    `gorm:"not null" json:"author"`
	ISBN       string    `gorm:"uniqueIndex;not null" json:"isbn"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	Quantity   int       `gorm:"not null;default:0" json:"quantity"`
	Available  int       `gorm:"not null;default:0" json:"available"`
	Price      float64   `gorm:"not null;default:0" json:"price"`
	IsForSale  bool      `gorm:"not null;default:false" json:"isForSale"`
	CategoryID string    `gorm:"type:uuid;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
