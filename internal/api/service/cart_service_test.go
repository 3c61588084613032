package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bookstore/internal/api/models"
)

func TestGetCart_CreatesLazily(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Cart")).
		Run(func(args mock.Arguments) {
			cart := args.Get(1).(*models.Cart)
			cart.ID = "cart-id"
		}).Return(nil)
	cartRepo.On("FindWithItems", mock.Anything, "user-id").
		Return(&models.Cart{ID: "cart-id", UserID: "user-id"}, nil)

	cart, err := svc.GetCart(context.Background(), "user-id")

	assert.NoError(t, err)
	assert.Equal(t, "cart-id", cart.ID)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_NewItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	bookRepo.On("FindByID", mock.Anything, "book-id").Return(&models.Book{ID: "book-id"}, nil)
	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("FindItem", mock.Anything, "cart-id", "book-id").Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("CreateItem", mock.Anything, mock.AnythingOfType("*models.CartItem")).Return(nil)

	item, err := svc.AddToCart(context.Background(), "user-id", "book-id", 2)

	assert.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "cart-id", item.CartID)
	cartRepo.AssertExpectations(t)
}

func TestAddToCart_ExistingItemIncrementsQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	existing := &models.CartItem{ID: "item-id", CartID: "cart-id", BookID: "book-id", Quantity: 1}

	bookRepo.On("FindByID", mock.Anything, "book-id").Return(&models.Book{ID: "book-id"}, nil)
	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("FindItem", mock.Anything, "cart-id", "book-id").Return(existing, nil)
	cartRepo.On("UpdateItemQuantity", mock.Anything, "item-id", 3).Return(nil)

	item, err := svc.AddToCart(context.Background(), "user-id", "book-id", 2)

	assert.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	cartRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestAddToCart_DefaultsQuantityToOne(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	bookRepo.On("FindByID", mock.Anything, "book-id").Return(&models.Book{ID: "book-id"}, nil)
	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("FindItem", mock.Anything, "cart-id", "book-id").Return(nil, gorm.ErrRecordNotFound)
	cartRepo.On("CreateItem", mock.Anything, mock.AnythingOfType("*models.CartItem")).Return(nil)

	item, err := svc.AddToCart(context.Background(), "user-id", "book-id", 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddToCart_UnknownBook(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	bookRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	item, err := svc.AddToCart(context.Background(), "user-id", "missing", 1)

	assert.Error(t, err)
	assert.Equal(t, ErrBookNotFound, err)
	assert.Nil(t, item)
	cartRepo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestUpdateItem_Success(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	existing := &models.CartItem{ID: "item-id", CartID: "cart-id", BookID: "book-id", Quantity: 1}

	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("FindItem", mock.Anything, "cart-id", "book-id").Return(existing, nil)
	cartRepo.On("UpdateItemQuantity", mock.Anything, "item-id", 5).Return(nil)

	item, err := svc.UpdateItem(context.Background(), "user-id", "book-id", 5)

	assert.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestUpdateItem_RejectsZeroQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	item, err := svc.UpdateItem(context.Background(), "user-id", "book-id", 0)

	assert.Error(t, err)
	assert.Nil(t, item)
	cartRepo.AssertNotCalled(t, "UpdateItemQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateItem_ItemNotInCart(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("FindItem", mock.Anything, "cart-id", "book-id").Return(nil, gorm.ErrRecordNotFound)

	item, err := svc.UpdateItem(context.Background(), "user-id", "book-id", 2)

	assert.Error(t, err)
	assert.Equal(t, ErrCartItemNotFound, err)
	assert.Nil(t, item)
}

func TestRemoveItem_Success(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(&models.Cart{ID: "cart-id"}, nil)
	cartRepo.On("DeleteItem", mock.Anything, "cart-id", "book-id").Return(nil)

	err := svc.RemoveItem(context.Background(), "user-id", "book-id")

	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestRemoveItem_NoCart(t *testing.T) {
	cartRepo := new(MockCartRepository)
	bookRepo := new(MockBookRepository)
	svc := NewCartService(cartRepo, bookRepo)

	cartRepo.On("FindByUser", mock.Anything, "user-id").Return(nil, gorm.ErrRecordNotFound)

	err := svc.RemoveItem(context.Background(), "user-id", "book-id")

	assert.Error(t, err)
	assert.Equal(t, ErrCartNotFound, err)
}
