package dto

type RequestBorrowRequest struct {
	BookID string `json:"bookId" binding:"required"`
}
