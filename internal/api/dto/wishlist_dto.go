package dto

type AddToWishlistRequest struct {
	BookID string `json:"bookId" binding:"required"`
}
