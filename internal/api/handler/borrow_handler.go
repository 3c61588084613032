package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore/internal/api/dto"
	"bookstore/internal/api/middleware"
	"bookstore/internal/api/service"
)

type BorrowHandler struct {
	svc service.BorrowService
}

func NewBorrowHandler(svc service.BorrowService) *BorrowHandler {
	return &BorrowHandler{svc: svc}
}

// RegisterRoutes mounts the lending endpoints. Every route requires a
// logged-in user; the approval routes additionally require admin.
func (h *BorrowHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.Use(authMW)

	rg.POST("/request", h.RequestBorrow)
	rg.POST("/return/:id", h.RequestReturn)
	rg.GET("/my", h.MyBorrows)

	rg.GET("/", middleware.RequireAdmin(), h.ListAll)
	rg.POST("/approve/:id", middleware.RequireAdmin(), h.ApproveBorrow)
	rg.POST("/approve-return/:id", middleware.RequireAdmin(), h.ApproveReturn)
}

func (h *BorrowHandler) RequestBorrow(c *gin.Context) {
	var req dto.RequestBorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.RequestBorrow(ctx, middleware.UserID(c), req.BookID)
	switch {
	case errors.Is(err, service.ErrBookUnavailable), errors.Is(err, service.ErrActiveBorrowExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Borrow request submitted successfully",
		"borrow":  borrow,
	})
}

func (h *BorrowHandler) RequestReturn(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.RequestReturn(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Return request submitted successfully",
		"borrow":  borrow,
	})
}

func (h *BorrowHandler) MyBorrows(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrows, err := h.svc.GetMyBorrows(ctx, middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrows fetched successfully",
		"borrows": borrows,
	})
}

func (h *BorrowHandler) ListAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrows, err := h.svc.GetAllBorrows(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrows fetched successfully",
		"borrows": borrows,
	})
}

func (h *BorrowHandler) ApproveBorrow(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.ApproveBorrow(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Borrow approved successfully",
		"borrow":  borrow,
	})
}

func (h *BorrowHandler) ApproveReturn(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	borrow, err := h.svc.ApproveReturn(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Return approved successfully",
		"borrow":  borrow,
	})
}
