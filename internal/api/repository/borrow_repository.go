package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"bookstore/internal/api/models"
)

var (
	// ErrNoCopiesAvailable means the conditional stock decrement matched no rows.
	ErrNoCopiesAvailable = errors.New("no copies available")
	// ErrBorrowNotPending means the conditional status flip matched no rows.
	ErrBorrowNotPending = errors.New("borrow is not pending")
)

type BorrowRepository interface {
	Create(ctx context.Context, borrow *models.Borrow) error
	FindByID(ctx context.Context, id string) (*models.Borrow, error)
	HasActiveBorrow(ctx context.Context, userID, bookID string) (bool, error)
	FindByUser(ctx context.Context, userID string) ([]models.Borrow, error)
	FindAll(ctx context.Context) ([]models.Borrow, error)
	RequestReturn(ctx context.Context, id string) (*models.Borrow, error)
	Approve(ctx context.Context, id string) (*models.Borrow, error)
	ConfirmReturn(ctx context.Context, id string) (*models.Borrow, error)
}

type borrowRepository struct {
	db *gorm.DB
}

func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Create(ctx context.Context, borrow *models.Borrow) error {
	return r.db.WithContext(ctx).Create(borrow).Error
}

func (r *borrowRepository) FindByID(ctx context.Context, id string) (*models.Borrow, error) {
	var borrow models.Borrow
	if err := r.db.WithContext(ctx).First(&borrow, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &borrow, nil
}

func (r *borrowRepository) HasActiveBorrow(ctx context.Context, userID, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("user_id = ? AND book_id = ? AND status IN ?",
			userID, bookID, []string{models.BorrowStatusPending, models.BorrowStatusApproved}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *borrowRepository) FindByUser(ctx context.Context, userID string) ([]models.Borrow, error) {
	var list []models.Borrow
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *borrowRepository) FindAll(ctx context.Context) ([]models.Borrow, error) {
	var list []models.Borrow
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("User").
		Order("created_at desc").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RequestReturn flips an APPROVED borrow back to PENDING, signalling
// "return awaiting admin confirmation". The status guard in the WHERE
// clause makes a double request a no-op failure.
func (r *borrowRepository) RequestReturn(ctx context.Context, id string) (*models.Borrow, error) {
	res := r.db.WithContext(ctx).Model(&models.Borrow{}).
		Where("id = ? AND status = ?", id, models.BorrowStatusApproved).
		Update("status", models.BorrowStatusPending)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrBorrowNotPending
	}
	return r.FindByID(ctx, id)
}

// Approve marks a PENDING borrow APPROVED and takes one copy off the
// shelf. Both writes are conditional updates inside one transaction, so
// two concurrent approvals can never share the same copy.
func (r *borrowRepository) Approve(ctx context.Context, id string) (*models.Borrow, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var borrow models.Borrow
		if err := tx.First(&borrow, "id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Book{}).
			Where("id = ? AND available > 0", borrow.BookID).
			UpdateColumn("available", gorm.Expr("available - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoCopiesAvailable
		}

		now := time.Now()
		res = tx.Model(&models.Borrow{}).
			Where("id = ? AND status = ?", id, models.BorrowStatusPending).
			Updates(map[string]interface{}{
				"status":      models.BorrowStatusApproved,
				"borrowed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBorrowNotPending
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// ConfirmReturn marks a return-requested borrow RETURNED and puts the
// copy back. The increment is guarded so available never exceeds the
// total quantity; a full shelf does not block the status change.
func (r *borrowRepository) ConfirmReturn(ctx context.Context, id string) (*models.Borrow, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var borrow models.Borrow
		if err := tx.First(&borrow, "id = ?", id).Error; err != nil {
			return err
		}

		now := time.Now()
		res := tx.Model(&models.Borrow{}).
			Where("id = ? AND status = ?", id, models.BorrowStatusPending).
			Updates(map[string]interface{}{
				"status":      models.BorrowStatusReturned,
				"returned_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBorrowNotPending
		}

		return tx.Model(&models.Book{}).
			Where("id = ? AND available < quantity", borrow.BookID).
			UpdateColumn("available", gorm.Expr("available + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}
