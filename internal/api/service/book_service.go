package service

import (
	"context"
	"errors"
	"strings"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrISBNInUse    = errors.New("a book with this ISBN already exists")
)

type BookService interface {
	Create(ctx context.Context, book *models.Book) error
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Update(ctx context.Context, id string, patch *BookPatch) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

// BookPatch carries partial catalog updates; nil means "leave as is".
type BookPatch struct {
	Title      *string
	Author     *string
	ISBN       *string
	ImageURL   *string
	Quantity   *int
	Price      *float64
	IsForSale  *bool
	CategoryID *string
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, book *models.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return errors.New("title is required")
	}
	if _, err := s.repo.FindByISBN(ctx, book.ISBN); err == nil {
		return ErrISBNInUse
	}

	// Every owned copy starts on the shelf.
	book.Available = book.Quantity
	return s.repo.Create(ctx, book)
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) Update(ctx context.Context, id string, patch *BookPatch) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookNotFound
	}

	if patch.Title != nil {
		book.Title = *patch.Title
	}
	if patch.Author != nil {
		book.Author = *patch.Author
	}
	if patch.ISBN != nil {
		book.ISBN = *patch.ISBN
	}
	if patch.ImageURL != nil {
		book.ImageURL = *patch.ImageURL
	}
	if patch.Quantity != nil {
		// Restocking resets the shelf count to the new total.
		book.Quantity = *patch.Quantity
		book.Available = *patch.Quantity
	}
	if patch.Price != nil {
		book.Price = *patch.Price
	}
	if patch.IsForSale != nil {
		book.IsForSale = *patch.IsForSale
	}
	if patch.CategoryID != nil {
		book.CategoryID = *patch.CategoryID
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}
