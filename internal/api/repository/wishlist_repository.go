package repository

import (
	"context"

	"gorm.io/gorm"

	"bookstore/internal/api/models"
)

type WishlistRepository interface {
	FindByUser(ctx context.Context, userID string) ([]models.Wishlist, error)
	Find(ctx context.Context, userID, bookID string) (*models.Wishlist, error)
	Create(ctx context.Context, entry *models.Wishlist) error
	Delete(ctx context.Context, id string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) FindByUser(ctx context.Context, userID string) ([]models.Wishlist, error) {
	var list []models.Wishlist
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *wishlistRepository) Find(ctx context.Context, userID, bookID string) (*models.Wishlist, error) {
	var entry models.Wishlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *wishlistRepository) Create(ctx context.Context, entry *models.Wishlist) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Wishlist{}, "id = ?", id).Error
}
