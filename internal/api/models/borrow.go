package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BorrowStatusPending  = "PENDING"
	BorrowStatusApproved = "APPROVED"
	BorrowStatusReturned = "RETURNED"
	BorrowStatusRejected = "REJECTED"
)

// Borrow is a loan record. PENDING doubles as "awaiting borrow approval"
// and "return requested, awaiting confirmation".
type Borrow struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID     string     `gorm:"type:uuid;index;not null" json:"userId"`
	BookID     string     `gorm:"type:uuid;index;not null" json:"bookId"`
	Status     string     `gorm:"default:'PENDING';not null" json:"status"`
	BorrowedAt *time.Time `json:"borrowedAt,omitempty"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Book       *Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	User       *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (b *Borrow) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (Borrow) TableName() string {
	return "borrows"
}
