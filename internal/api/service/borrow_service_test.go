package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

func TestRequestBorrow_Success(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	book := &models.Book{ID: "book-id", Title: "Dune", Quantity: 3, Available: 2}
	bookRepo.On("FindByID", mock.Anything, "book-id").Return(book, nil)
	borrowRepo.On("HasActiveBorrow", mock.Anything, "user-id", "book-id").Return(false, nil)
	borrowRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Borrow")).Return(nil)

	borrow, err := svc.RequestBorrow(context.Background(), "user-id", "book-id")

	assert.NoError(t, err)
	assert.Equal(t, models.BorrowStatusPending, borrow.Status)
	assert.Equal(t, "user-id", borrow.UserID)
	assert.Equal(t, "book-id", borrow.BookID)
	borrowRepo.AssertExpectations(t)
}

func TestRequestBorrow_NoCopiesAvailable(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	book := &models.Book{ID: "book-id", Quantity: 3, Available: 0}
	bookRepo.On("FindByID", mock.Anything, "book-id").Return(book, nil)

	borrow, err := svc.RequestBorrow(context.Background(), "user-id", "book-id")

	assert.Error(t, err)
	assert.Equal(t, ErrBookUnavailable, err)
	assert.Nil(t, borrow)
	borrowRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestBorrow_UnknownBook(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	bookRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	borrow, err := svc.RequestBorrow(context.Background(), "user-id", "missing")

	assert.Error(t, err)
	assert.Equal(t, ErrBookUnavailable, err)
	assert.Nil(t, borrow)
}

func TestRequestBorrow_ActiveBorrowExists(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	book := &models.Book{ID: "book-id", Quantity: 3, Available: 2}
	bookRepo.On("FindByID", mock.Anything, "book-id").Return(book, nil)
	borrowRepo.On("HasActiveBorrow", mock.Anything, "user-id", "book-id").Return(true, nil)

	borrow, err := svc.RequestBorrow(context.Background(), "user-id", "book-id")

	assert.Error(t, err)
	assert.Equal(t, ErrActiveBorrowExists, err)
	assert.Nil(t, borrow)
	borrowRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApproveBorrow_Success(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	now := time.Now()
	approved := &models.Borrow{
		ID:         "borrow-id",
		Status:     models.BorrowStatusApproved,
		BorrowedAt: &now,
	}
	borrowRepo.On("Approve", mock.Anything, "borrow-id").Return(approved, nil)

	borrow, err := svc.ApproveBorrow(context.Background(), "borrow-id")

	assert.NoError(t, err)
	assert.Equal(t, models.BorrowStatusApproved, borrow.Status)
	assert.NotNil(t, borrow.BorrowedAt)
	borrowRepo.AssertExpectations(t)
}

func TestApproveBorrow_NoCopiesLeft(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	borrowRepo.On("Approve", mock.Anything, "borrow-id").Return(nil, repository.ErrNoCopiesAvailable)

	borrow, err := svc.ApproveBorrow(context.Background(), "borrow-id")

	assert.Error(t, err)
	assert.Equal(t, ErrBookUnavailable, err)
	assert.Nil(t, borrow)
}

func TestApproveBorrow_NotPending(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	borrowRepo.On("Approve", mock.Anything, "borrow-id").Return(nil, repository.ErrBorrowNotPending)

	borrow, err := svc.ApproveBorrow(context.Background(), "borrow-id")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidBorrowRequest, err)
	assert.Nil(t, borrow)
}

func TestRequestReturn_Success(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	existing := &models.Borrow{
		ID:     "borrow-id",
		UserID: "user-id",
		Status: models.BorrowStatusApproved,
	}
	pending := &models.Borrow{
		ID:     "borrow-id",
		UserID: "user-id",
		Status: models.BorrowStatusPending,
	}
	borrowRepo.On("FindByID", mock.Anything, "borrow-id").Return(existing, nil)
	borrowRepo.On("RequestReturn", mock.Anything, "borrow-id").Return(pending, nil)

	borrow, err := svc.RequestReturn(context.Background(), "user-id", "borrow-id")

	assert.NoError(t, err)
	assert.Equal(t, models.BorrowStatusPending, borrow.Status)
	borrowRepo.AssertExpectations(t)
}

func TestRequestReturn_NotOwner(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	existing := &models.Borrow{
		ID:     "borrow-id",
		UserID: "someone-else",
		Status: models.BorrowStatusApproved,
	}
	borrowRepo.On("FindByID", mock.Anything, "borrow-id").Return(existing, nil)

	borrow, err := svc.RequestReturn(context.Background(), "user-id", "borrow-id")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidReturnRequest, err)
	assert.Nil(t, borrow)
	borrowRepo.AssertNotCalled(t, "RequestReturn", mock.Anything, mock.Anything)
}

func TestRequestReturn_NotApproved(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	existing := &models.Borrow{
		ID:     "borrow-id",
		UserID: "user-id",
		Status: models.BorrowStatusPending,
	}
	borrowRepo.On("FindByID", mock.Anything, "borrow-id").Return(existing, nil)

	borrow, err := svc.RequestReturn(context.Background(), "user-id", "borrow-id")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidReturnRequest, err)
	assert.Nil(t, borrow)
}

func TestApproveReturn_Success(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	now := time.Now()
	returned := &models.Borrow{
		ID:         "borrow-id",
		Status:     models.BorrowStatusReturned,
		ReturnedAt: &now,
	}
	borrowRepo.On("ConfirmReturn", mock.Anything, "borrow-id").Return(returned, nil)

	borrow, err := svc.ApproveReturn(context.Background(), "borrow-id")

	assert.NoError(t, err)
	assert.Equal(t, models.BorrowStatusReturned, borrow.Status)
	assert.NotNil(t, borrow.ReturnedAt)
}

func TestApproveReturn_InvalidState(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	borrowRepo.On("ConfirmReturn", mock.Anything, "borrow-id").Return(nil, repository.ErrBorrowNotPending)

	borrow, err := svc.ApproveReturn(context.Background(), "borrow-id")

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidReturnApproval, err)
	assert.Nil(t, borrow)
}

func TestGetMyBorrows(t *testing.T) {
	borrowRepo := new(MockBorrowRepository)
	bookRepo := new(MockBookRepository)
	svc := NewBorrowService(borrowRepo, bookRepo)

	borrows := []models.Borrow{
		{ID: "b1", UserID: "user-id", Status: models.BorrowStatusPending},
		{ID: "b2", UserID: "user-id", Status: models.BorrowStatusReturned},
	}
	borrowRepo.On("FindByUser", mock.Anything, "user-id").Return(borrows, nil)

	result, err := svc.GetMyBorrows(context.Background(), "user-id")

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}
