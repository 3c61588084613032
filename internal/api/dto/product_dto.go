package dto

import "bookstore/internal/api/service"

type UpsertProductRequest struct {
	ID         string   `json:"id"`
	ISBN       string   `json:"isbn"`
	Title      *string  `json:"title"`
	Author     *string  `json:"author"`
	Price      *float64 `json:"price" binding:"omitempty,min=0"`
	Stock      *int     `json:"stock" binding:"omitempty,min=0"`
	ImageURL   *string  `json:"imageUrl"`
	CategoryID *string  `json:"categoryId"`
}

func (r *UpsertProductRequest) ToInput() *service.ProductInput {
	return &service.ProductInput{
		ID:         r.ID,
		ISBN:       r.ISBN,
		Title:      r.Title,
		Author:     r.Author,
		Price:      r.Price,
		Stock:      r.Stock,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
	}
}
