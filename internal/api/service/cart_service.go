package service

import (
	"context"
	"errors"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	AddToCart(ctx context.Context, userID, bookID string, quantity int) (*models.CartItem, error)
	UpdateItem(ctx context.Context, userID, bookID string, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, userID, bookID string) error
}

type cartService struct {
	cartRepo repository.CartRepository
	bookRepo repository.BookRepository
}

func NewCartService(cartRepo repository.CartRepository, bookRepo repository.BookRepository) CartService {
	return &cartService{cartRepo: cartRepo, bookRepo: bookRepo}
}

func (s *cartService) getOrCreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}

	cart = &models.Cart{UserID: userID, IsActive: true}
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart returns the user's cart with items, creating it lazily.
func (s *cartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	if _, err := s.getOrCreateCart(ctx, userID); err != nil {
		return nil, err
	}
	return s.cartRepo.FindWithItems(ctx, userID)
}

// AddToCart upserts a line: an existing (cart, book) line has its
// quantity increased rather than duplicated.
func (s *cartService) AddToCart(ctx context.Context, userID, bookID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return nil, ErrBookNotFound
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.cartRepo.FindItem(ctx, cart.ID, bookID); err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &models.CartItem{CartID: cart.ID, BookID: bookID, Quantity: quantity}
	if err := s.cartRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, bookID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, ErrCartNotFound
	}

	item, err := s.cartRepo.FindItem(ctx, cart.ID, bookID)
	if err != nil {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, bookID string) error {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return ErrCartNotFound
	}

	if err := s.cartRepo.DeleteItem(ctx, cart.ID, bookID); err != nil {
		return ErrCartItemNotFound
	}
	return nil
}
