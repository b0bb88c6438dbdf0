package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

func TestCatalogService_AddListing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
	npo := seedAccount(t, db, "npo", "City Shelter", "Stockholm", model.RoleNPO)

	svc := NewCatalogService(repository.NewListingRepository(db), nil)

	listing, err := svc.AddListing(ctx, donor.ID, model.RoleRestaurant, "Soup", "", 5)
	assert.NoError(t, err)
	assert.NotZero(t, listing.ID)
	assert.Equal(t, donor.ID, listing.AccountID)
	assert.Equal(t, "", listing.Description)

	_, err = svc.AddListing(ctx, npo.ID, model.RoleNPO, "Soup", "", 5)
	assert.ErrorIs(t, err, errors.ErrRoleNotAllowed)

	_, err = svc.AddListing(ctx, donor.ID, model.RoleRestaurant, "Soup", "", -1)
	assert.ErrorIs(t, err, errors.ErrInvalidQuantity)

	owned, err := svc.ListForOwner(ctx, donor.ID)
	assert.NoError(t, err)
	assert.Len(t, owned, 1)
	assert.Equal(t, listing.ID, owned[0].ID)
}

func TestCatalogService_UpdateListing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
	other := seedAccount(t, db, "other", "Other Kitchen", "Uppsala", model.RoleRestaurant)
	listing := seedListing(t, db, donor, "Soup", 5)

	svc := NewCatalogService(repository.NewListingRepository(db), nil)

	updated, err := svc.UpdateListing(ctx, donor.ID, listing.ID, "Lentil soup", "2L containers", 7)
	assert.NoError(t, err)
	assert.Equal(t, "Lentil soup", updated.Name)
	assert.Equal(t, 7, updated.Quantity)

	// Only the owner may edit a listing.
	_, err = svc.UpdateListing(ctx, other.ID, listing.ID, "Hijacked", "", 0)
	assert.ErrorIs(t, err, errors.ErrNotListingOwner)

	var got model.Listing
	assert.NoError(t, db.First(&got, listing.ID).Error)
	assert.Equal(t, "Lentil soup", got.Name)

	_, err = svc.UpdateListing(ctx, donor.ID, 999, "Ghost", "", 1)
	assert.ErrorIs(t, err, errors.ErrListingNotFound)
}

func TestCatalogService_DeleteListing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	donor := seedAccount(t, db, "donor", "Donor Kitchen", "Stockholm", model.RoleRestaurant)
	other := seedAccount(t, db, "other", "Other Kitchen", "Uppsala", model.RoleRestaurant)
	keep := seedListing(t, db, donor, "Bread", 5)
	drop := seedListing(t, db, donor, "Soup", 5)

	svc := NewCatalogService(repository.NewListingRepository(db), nil)

	// Non-owners cannot delete.
	assert.ErrorIs(t, svc.DeleteListing(ctx, other.ID, drop.ID), errors.ErrNotListingOwner)

	// Delete removes exactly the targeted record.
	assert.NoError(t, svc.DeleteListing(ctx, donor.ID, drop.ID))
	var count int64
	assert.NoError(t, db.Model(&model.Listing{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var got model.Listing
	assert.NoError(t, db.First(&got, keep.ID).Error)

	// Deleting a non-existent ID is a no-op.
	assert.NoError(t, svc.DeleteListing(ctx, donor.ID, drop.ID))
}
