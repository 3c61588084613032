package service

import (
	"context"
	"errors"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrBookUnavailable       = errors.New("book not available")
	ErrActiveBorrowExists    = errors.New("you already have an active borrow for this book")
	ErrInvalidBorrowRequest  = errors.New("invalid borrow request")
	ErrInvalidReturnRequest  = errors.New("invalid return request")
	ErrInvalidReturnApproval = errors.New("invalid return approval")
)

type BorrowService interface {
	RequestBorrow(ctx context.Context, userID, bookID string) (*models.Borrow, error)
	RequestReturn(ctx context.Context, userID, borrowID string) (*models.Borrow, error)
	GetMyBorrows(ctx context.Context, userID string) ([]models.Borrow, error)
	GetAllBorrows(ctx context.Context) ([]models.Borrow, error)
	ApproveBorrow(ctx context.Context, borrowID string) (*models.Borrow, error)
	ApproveReturn(ctx context.Context, borrowID string) (*models.Borrow, error)
}

type borrowService struct {
	borrowRepo repository.BorrowRepository
	bookRepo   repository.BookRepository
}

func NewBorrowService(borrowRepo repository.BorrowRepository, bookRepo repository.BookRepository) BorrowService {
	return &borrowService{borrowRepo: borrowRepo, bookRepo: bookRepo}
}

// RequestBorrow files a PENDING loan request. Stock is not touched here,
// the copy is only taken off the shelf at approval time.
func (s *borrowService) RequestBorrow(ctx context.Context, userID, bookID string) (*models.Borrow, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil || book.Available <= 0 {
		return nil, ErrBookUnavailable
	}

	active, err := s.borrowRepo.HasActiveBorrow(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, ErrActiveBorrowExists
	}

	borrow := &models.Borrow{
		UserID: userID,
		BookID: bookID,
		Status: models.BorrowStatusPending,
	}
	if err := s.borrowRepo.Create(ctx, borrow); err != nil {
		return nil, err
	}
	return borrow, nil
}

// RequestReturn puts an APPROVED borrow back into PENDING, meaning
// "return awaiting admin confirmation".
func (s *borrowService) RequestReturn(ctx context.Context, userID, borrowID string) (*models.Borrow, error) {
	borrow, err := s.borrowRepo.FindByID(ctx, borrowID)
	if err != nil || borrow.UserID != userID || borrow.Status != models.BorrowStatusApproved {
		return nil, ErrInvalidReturnRequest
	}

	updated, err := s.borrowRepo.RequestReturn(ctx, borrowID)
	if err != nil {
		return nil, ErrInvalidReturnRequest
	}
	return updated, nil
}

func (s *borrowService) GetMyBorrows(ctx context.Context, userID string) ([]models.Borrow, error) {
	return s.borrowRepo.FindByUser(ctx, userID)
}

func (s *borrowService) GetAllBorrows(ctx context.Context) ([]models.Borrow, error) {
	return s.borrowRepo.FindAll(ctx)
}

// ApproveBorrow hands over a copy: decrements the shelf count and flips
// the borrow to APPROVED, atomically.
func (s *borrowService) ApproveBorrow(ctx context.Context, borrowID string) (*models.Borrow, error) {
	borrow, err := s.borrowRepo.Approve(ctx, borrowID)
	switch {
	case errors.Is(err, repository.ErrNoCopiesAvailable):
		return nil, ErrBookUnavailable
	case err != nil:
		return nil, ErrInvalidBorrowRequest
	}
	return borrow, nil
}

// ApproveReturn confirms a requested return: flips the borrow to
// RETURNED and puts the copy back on the shelf.
func (s *borrowService) ApproveReturn(ctx context.Context, borrowID string) (*models.Borrow, error) {
	borrow, err := s.borrowRepo.ConfirmReturn(ctx, borrowID)
	if err != nil {
		return nil, ErrInvalidReturnApproval
	}
	return borrow, nil
}
