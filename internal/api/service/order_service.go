package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
)

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrOrderNotFound     = errors.New("order not found")
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID string) (*models.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]models.Order, error)
	GetOrderByID(ctx context.Context, orderID, userID string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo}
}

// CreateOrder turns the active cart into an immutable order. Unit prices
// are snapshotted at checkout time. The stock check is against the total
// owned quantity, matching the sale-stock semantics of the catalog.
func (s *orderService) CreateOrder(ctx context.Context, userID string) (*models.Order, error) {
	cart, err := s.cartRepo.FindWithItems(ctx, userID)
	if err != nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	var total float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Book == nil {
			return nil, fmt.Errorf("cart item %s references a missing book", item.ID)
		}
		if item.Quantity > item.Book.Quantity {
			return nil, fmt.Errorf("%w for %s", ErrInsufficientStock, item.Book.Title)
		}
		total += item.Book.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			BookID:   item.BookID,
			Price:    item.Book.Price,
			Quantity: item.Quantity,
		})
	}

	order := &models.Order{
		UserID: userID,
		Total:  total,
		Status: models.OrderStatusPending,
		Items:  items,
	}

	// Order creation, stock deduction and cart clearing commit together
	// or not at all.
	if err := s.orderRepo.Checkout(ctx, order, cart.ID); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, ErrInsufficientStock
		}
		return nil, err
	}

	created, err := s.orderRepo.FindByIDForUser(ctx, order.ID, userID)
	if err != nil {
		return order, nil
	}
	return created, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID, userID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
