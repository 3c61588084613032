package service

import (
	"context"
	"errors"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrAlreadyInWishlist = errors.New("book already in wishlist")
	ErrNotInWishlist     = errors.New("book not found in wishlist")
)

type WishlistService interface {
	GetWishlist(ctx context.Context, userID string) ([]models.Wishlist, error)
	AddToWishlist(ctx context.Context, userID, bookID string) (*models.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID string) error
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	bookRepo     repository.BookRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, bookRepo repository.BookRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, bookRepo: bookRepo}
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID string) ([]models.Wishlist, error) {
	return s.wishlistRepo.FindByUser(ctx, userID)
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID, bookID string) (*models.Wishlist, error) {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, ErrBookNotFound
	}

	if _, err := s.wishlistRepo.Find(ctx, userID, bookID); err == nil {
		return nil, ErrAlreadyInWishlist
	}

	entry := &models.Wishlist{UserID: userID, BookID: bookID}
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, bookID string) error {
	entry, err := s.wishlistRepo.Find(ctx, userID, bookID)
	if err != nil {
		return ErrNotInWishlist
	}
	return s.wishlistRepo.Delete(ctx, entry.ID)
}
