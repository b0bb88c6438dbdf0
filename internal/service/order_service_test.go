package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("drains a listing to zero with one order and one item", func(t *testing.T) {
		db := newTestDB(t)
		donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
		npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)
		listing := seedListing(t, db, donor, "Soup", 10)

		svc := NewOrderService(repository.NewOrderRepository(db), nil)
		order, err := svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{
			{ListingID: listing.ID, Quantity: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusCompleted, order.Status)
		assert.Len(t, order.Items, 1)

		var got model.Listing
		assert.NoError(t, db.First(&got, listing.ID).Error)
		assert.Equal(t, 0, got.Quantity)

		var orderCount, itemCount int64
		assert.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
		assert.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCount).Error)
		assert.EqualValues(t, 1, orderCount)
		assert.EqualValues(t, 1, itemCount)
	})

	t.Run("insufficient stock rolls everything back", func(t *testing.T) {
		db := newTestDB(t)
		donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
		npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)
		plenty := seedListing(t, db, donor, "Bread", 20)
		scarce := seedListing(t, db, donor, "Soup", 3)

		svc := NewOrderService(repository.NewOrderRepository(db), nil)
		_, err := svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{
			{ListingID: plenty.ID, Quantity: 5},
			{ListingID: scarce.ID, Quantity: 4},
		})
		assert.ErrorIs(t, err, errors.ErrInsufficientStock)

		// The first item's decrement must have been rolled back too.
		var got model.Listing
		assert.NoError(t, db.First(&got, plenty.ID).Error)
		assert.Equal(t, 20, got.Quantity)
		assert.NoError(t, db.First(&got, scarce.ID).Error)
		assert.Equal(t, 3, got.Quantity)

		var itemCount int64
		assert.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCount).Error)
		assert.EqualValues(t, 0, itemCount)

		// The attempt itself is recorded as a failed, item-less order.
		var failed []model.Order
		assert.NoError(t, db.Where("status = ?", model.OrderStatusFailed).Find(&failed).Error)
		assert.Len(t, failed, 1)
		assert.Equal(t, npo.ID, failed[0].AccountID)
		assert.Contains(t, failed[0].ErrorMessage, errors.ErrInsufficientStock.Error())
	})

	t.Run("unknown listing fails the order", func(t *testing.T) {
		db := newTestDB(t)
		npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)

		svc := NewOrderService(repository.NewOrderRepository(db), nil)
		_, err := svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{
			{ListingID: 999, Quantity: 1},
		})
		assert.ErrorIs(t, err, errors.ErrListingNotFound)
	})

	t.Run("rejects empty and invalid input before touching storage", func(t *testing.T) {
		db := newTestDB(t)
		npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)
		svc := NewOrderService(repository.NewOrderRepository(db), nil)

		_, err := svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, nil)
		assert.ErrorIs(t, err, errors.ErrEmptyOrder)

		_, err = svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{{ListingID: 1, Quantity: 0}})
		assert.ErrorIs(t, err, errors.ErrInvalidQuantity)

		var orderCount int64
		assert.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
		assert.EqualValues(t, 0, orderCount)
	})

	t.Run("restaurants cannot place orders", func(t *testing.T) {
		db := newTestDB(t)
		donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
		svc := NewOrderService(repository.NewOrderRepository(db), nil)

		_, err := svc.PlaceOrder(ctx, donor.ID, model.RoleRestaurant, []OrderItemInput{{ListingID: 1, Quantity: 1}})
		assert.ErrorIs(t, err, errors.ErrRoleNotAllowed)
	})

	t.Run("sequential orders consume stock cumulatively", func(t *testing.T) {
		db := newTestDB(t)
		donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
		npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)
		listing := seedListing(t, db, donor, "Soup", 10)

		svc := NewOrderService(repository.NewOrderRepository(db), nil)
		_, err := svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{{ListingID: listing.ID, Quantity: 6}})
		assert.NoError(t, err)
		_, err = svc.PlaceOrder(ctx, npo.ID, model.RoleNPO, []OrderItemInput{{ListingID: listing.ID, Quantity: 6}})
		assert.ErrorIs(t, err, errors.ErrInsufficientStock)

		var got model.Listing
		assert.NoError(t, db.First(&got, listing.ID).Error)
		assert.Equal(t, 4, got.Quantity)
	})
}

func TestOrderService_ListForAccount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
	npoA := seedAccount(t, db, "npo-a", "City Shelter", "Stockholm", model.RoleNPO)
	npoB := seedAccount(t, db, "npo-b", "Food Angels", "Uppsala", model.RoleNPO)
	listing := seedListing(t, db, donor, "Soup", 10)

	svc := NewOrderService(repository.NewOrderRepository(db), nil)
	_, err := svc.PlaceOrder(ctx, npoA.ID, model.RoleNPO, []OrderItemInput{{ListingID: listing.ID, Quantity: 2}})
	assert.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, npoB.ID, model.RoleNPO, []OrderItemInput{{ListingID: listing.ID, Quantity: 3}})
	assert.NoError(t, err)

	orders, err := svc.ListForAccount(ctx, npoA.ID)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, npoA.ID, orders[0].AccountID)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}
