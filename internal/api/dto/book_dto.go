package dto

import (
	"bookstore/internal/api/models"
	"bookstore/internal/api/service"
)

type CreateBookRequest struct {
	Title      string  `json:"title" binding:"required"`
	Author     string  `json:"author" binding:"required"`
	ISBN       string  `json:"isbn" binding:"required"`
	ImageURL   string  `json:"imageUrl"`
	Quantity   int     `json:"quantity" binding:"required,min=0"`
	Price      float64 `json:"price" binding:"min=0"`
	IsForSale  bool    `json:"isForSale"`
	CategoryID string  `json:"categoryId" binding:"required"`
}

func (r *CreateBookRequest) ToModel() models.Book {
	return models.Book{
		Title:      r.Title,
		Author:     r.Author,
		ISBN:       r.ISBN,
		ImageURL:   r.ImageURL,
		Quantity:   r.Quantity,
		Price:      r.Price,
		IsForSale:  r.IsForSale,
		CategoryID: r.CategoryID,
	}
}

type UpdateBookRequest struct {
	Title      *string  `json:"title"`
	Author     *string  `json:"author"`
	ISBN       *string  `json:"isbn"`
	ImageURL   *string  `json:"imageUrl"`
	Quantity   *int     `json:"quantity" binding:"omitempty,min=0"`
	Price      *float64 `json:"price" binding:"omitempty,min=0"`
	IsForSale  *bool    `json:"isForSale"`
	CategoryID *string  `json:"categoryId"`
}

func (r *UpdateBookRequest) ToPatch() *service.BookPatch {
	return &service.BookPatch{
		Title:      r.Title,
		Author:     r.Author,
		ISBN:       r.ISBN,
		ImageURL:   r.ImageURL,
		Quantity:   r.Quantity,
		Price:      r.Price,
		IsForSale:  r.IsForSale,
		CategoryID: r.CategoryID,
	}
}
