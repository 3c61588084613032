package service

import (
	"context"
	"errors"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

// ProductService is the sale-side view over the same book rows: only
// for-sale listings, with price and sale stock management.
type ProductService interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	CreateOrUpdate(ctx context.Context, in *ProductInput) (*models.Book, error)
	Update(ctx context.Context, id string, in *ProductInput) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput addresses a book by ID or ISBN and patches its listing.
type ProductInput struct {
	ID         string
	ISBN       string
	Title      *string
	Author     *string
	Price      *float64
	Stock      *int
	ImageURL   *string
	CategoryID *string
}

type productService struct {
	bookRepo repository.BookRepository
}

func NewProductService(bookRepo repository.BookRepository) ProductService {
	return &productService{bookRepo: bookRepo}
}

func (s *productService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.bookRepo.FindForSale(ctx)
}

func (s *productService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// CreateOrUpdate lists a book for sale. An existing book (matched by id,
// then isbn) is updated in place; an unknown isbn creates a fresh row.
func (s *productService) CreateOrUpdate(ctx context.Context, in *ProductInput) (*models.Book, error) {
	switch {
	case in.ID != "":
		book, err := s.bookRepo.FindByID(ctx, in.ID)
		if err != nil {
			return nil, ErrBookNotFound
		}
		s.apply(book, in)
		book.IsForSale = true
		if err := s.bookRepo.Update(ctx, book); err != nil {
			return nil, err
		}
		return book, nil

	case in.ISBN != "":
		book, err := s.bookRepo.FindByISBN(ctx, in.ISBN)
		if err == nil {
			s.apply(book, in)
			book.IsForSale = true
			if err := s.bookRepo.Update(ctx, book); err != nil {
				return nil, err
			}
			return book, nil
		}

		book = &models.Book{ISBN: in.ISBN, IsForSale: true}
		s.apply(book, in)
		book.Available = book.Quantity
		if err := s.bookRepo.Create(ctx, book); err != nil {
			return nil, err
		}
		return book, nil

	default:
		return nil, errors.New("book ID or ISBN is required")
	}
}

func (s *productService) Update(ctx context.Context, id string, in *ProductInput) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookNotFound
	}
	s.apply(book, in)
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if _, err := s.bookRepo.FindByID(ctx, id); err != nil {
		return ErrBookNotFound
	}
	return s.bookRepo.Delete(ctx, id)
}

func (s *productService) apply(book *models.Book, in *ProductInput) {
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Price != nil {
		book.Price = *in.Price
	}
	if in.Stock != nil {
		// Sale stock restock resets both counters, like a catalog restock.
		book.Quantity = *in.Stock
		book.Available = *in.Stock
	}
	if in.ImageURL != nil {
		book.ImageURL = *in.ImageURL
	}
	if in.CategoryID != nil {
		book.CategoryID = *in.CategoryID
	}
}
