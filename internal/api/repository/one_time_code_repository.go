package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bookstore/internal/api/models"
)

type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *models.OneTimeCode) error
	FindByUserAndCode(ctx context.Context, userID, code string) (*models.OneTimeCode, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) error
}

type oneTimeCodeRepository struct {
	db *gorm.DB
}

func NewOneTimeCodeRepository(db *gorm.DB) OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

func (r *oneTimeCodeRepository) Create(ctx context.Context, code *models.OneTimeCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *oneTimeCodeRepository) FindByUserAndCode(ctx context.Context, userID, code string) (*models.OneTimeCode, error) {
	var otp models.OneTimeCode
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ?", userID, code).
		First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *oneTimeCodeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.OneTimeCode{}, "id = ?", id).Error
}

// DeleteExpired removes codes past their expiry. Safe to call periodically.
func (r *oneTimeCodeRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.OneTimeCode{}).Error
}
