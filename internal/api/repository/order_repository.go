package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bookstore/internal/api/models"
)

// ErrInsufficientStock means a conditional quantity deduction matched no rows.
var ErrInsufficientStock = errors.New("insufficient stock")

type OrderRepository interface {
	// Checkout persists the order with its items, deducts each book's
	// quantity and clears the cart items, all in one transaction.
	Checkout(ctx context.Context, order *models.Order, cartID string) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindByIDForUser(ctx context.Context, orderID, userID string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Checkout(ctx context.Context, order *models.Order, cartID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Deduct sale stock per item. The guard keeps quantity from going
		// negative when two checkouts race for the same book.
		for _, item := range order.Items {
			res := tx.Model(&models.Book{}).
				Where("id = ? AND quantity >= ?", item.BookID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}

		// The cart row survives, only its items go.
		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
	})
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var list []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByIDForUser scopes the lookup to the requesting user, so another
// user's order id reads as not found rather than forbidden.
func (r *orderRepository) FindByIDForUser(ctx context.Context, orderID, userID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items.Book").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
