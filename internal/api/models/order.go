package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const OrderStatusPending = "PENDING"

// Order is immutable after checkout; item prices are snapshots of the
// book price at order time, not live references.
type Order struct {
	ID        string      `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string      `gorm:"type:uuid;index;not null" json:"userId"`
	Total     float64     `gorm:"not null" json:"total"`
	Status    string      `gorm:"default:'PENDING';not null" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID       string  `gorm:"primaryKey;type:uuid" json:"id"`
	OrderID  string  `gorm:"type:uuid;index;not null" json:"orderId"`
	BookID   string  `gorm:"type:uuid;not null" json:"bookId"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Book     *Book   `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

func (OrderItem) TableName() string {
	return "order_items"
}
