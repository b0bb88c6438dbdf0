package repository

import (
	"context"

	"gorm.io/gorm"

	"mealbridge/internal/model"
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	Update(ctx context.Context, listing *model.Listing) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Listing, error)
	ListByOwner(ctx context.Context, accountID uint) ([]model.Listing, error)
	ListByOwners(ctx context.Context, accountIDs []uint) ([]model.Listing, error)
	ListAllByName(ctx context.Context) ([]model.Listing, error)
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository creates a new listing repository.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// Create creates a new listing.
func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// Update updates an existing listing.
func (r *listingRepository) Update(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

// Delete removes a listing by ID. Deleting an absent ID is a no-op.
func (r *listingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Listing{}, id).Error
}

// FindByID finds a listing by ID.
func (r *listingRepository) FindByID(ctx context.Context, id uint) (*model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListByOwner returns the listings owned by one account, oldest first.
func (r *listingRepository) ListByOwner(ctx context.Context, accountID uint) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).
		Order("id").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// ListByOwners returns the listings owned by any of the given accounts.
func (r *listingRepository) ListByOwners(ctx context.Context, accountIDs []uint) ([]model.Listing, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Where("account_id IN ?", accountIDs).
		Order("id").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

// ListAllByName returns the global catalog ordered by listing name.
func (r *listingRepository) ListAllByName(ctx context.Context) ([]model.Listing, error) {
	var listings []model.Listing
	if err := r.db.WithContext(ctx).Order("name").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
