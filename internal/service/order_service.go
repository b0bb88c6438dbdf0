package service

import (
	"context"
	"fmt"

	"mealbridge/internal/cache"
	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

// OrderItemInput is one requested listing-quantity pair.
type OrderItemInput struct {
	ListingID uint
	Quantity  int
}

// OrderService handles order placement against the catalog.
type OrderService interface {
	PlaceOrder(ctx context.Context, accountID uint, role model.Role, items []OrderItemInput) (*model.Order, error)
	ListForAccount(ctx context.Context, accountID uint) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cache     *cache.Client
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, cache *cache.Client) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// PlaceOrder creates the order header, attaches every line item and
// decrements matching listing stock, all inside one transaction. Any item
// that would overdraw its listing fails the whole order and nothing is
// committed. The failed attempt itself is recorded as an item-less order
// header so placement history stays complete.
func (s *orderService) PlaceOrder(ctx context.Context, accountID uint, role model.Role, items []OrderItemInput) (*model.Order, error) {
	if role != model.RoleNPO {
		return nil, errors.ErrRoleNotAllowed
	}
	if len(items) == 0 {
		return nil, errors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, errors.ErrInvalidQuantity
		}
	}

	order := &model.Order{
		AccountID: accountID,
		Status:    model.OrderStatusCompleted,
	}

	err := s.orderRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.OrderRepository) error {
		if err := txRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		for _, item := range items {
			affected, err := txRepo.DecrementListingStock(ctx, item.ListingID, item.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if affected == 0 {
				exists, err := txRepo.ListingExists(ctx, item.ListingID)
				if err != nil {
					return fmt.Errorf("check listing: %w", err)
				}
				if !exists {
					return errors.ErrListingNotFound
				}
				return errors.ErrInsufficientStock
			}

			if err := txRepo.CreateItem(ctx, &model.OrderItem{
				ListingID: item.ListingID,
				OrderID:   order.ID,
				Quantity:  item.Quantity,
			}); err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		// Record the failed attempt outside the rolled-back transaction.
		failed := &model.Order{
			AccountID:    accountID,
			Status:       model.OrderStatusFailed,
			ErrorMessage: err.Error(),
		}
		_ = s.orderRepo.Create(ctx, failed)
		return nil, err
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)

	order.Items = make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		order.Items = append(order.Items, model.OrderItem{
			ListingID: item.ListingID,
			OrderID:   order.ID,
			Quantity:  item.Quantity,
		})
	}
	return order, nil
}

// ListForAccount returns the caller's own orders with items.
func (s *orderService) ListForAccount(ctx context.Context, accountID uint) ([]model.Order, error) {
	return s.orderRepo.ListForAccount(ctx, accountID)
}
