package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OneTimeCode is a single-use login code. Rows are deleted on successful
// verification and are useless after ExpiresAt.
type OneTimeCode struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"userId"`
	Code      string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *OneTimeCode) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (OneTimeCode) TableName() string {
	return "one_time_codes"
}
