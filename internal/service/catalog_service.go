package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mealbridge/internal/cache"
	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

// catalogCacheKey caches the global catalog served to NPO dashboards.
// Every catalog write invalidates it.
const catalogCacheKey = "catalog:global"

// CatalogService handles a restaurant's food listings.
type CatalogService interface {
	AddListing(ctx context.Context, ownerID uint, ownerRole model.Role, name, description string, quantity int) (*model.Listing, error)
	UpdateListing(ctx context.Context, ownerID uint, id uint, name, description string, quantity int) (*model.Listing, error)
	DeleteListing(ctx context.Context, ownerID uint, id uint) error
	ListForOwner(ctx context.Context, ownerID uint) ([]model.Listing, error)
}

type catalogService struct {
	listingRepo repository.ListingRepository
	cache       *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(listingRepo repository.ListingRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		listingRepo: listingRepo,
		cache:       cache,
	}
}

// AddListing persists a new listing for a restaurant account. Description is
// optional; a missing description is stored empty.
func (s *catalogService) AddListing(ctx context.Context, ownerID uint, ownerRole model.Role, name, description string, quantity int) (*model.Listing, error) {
	if ownerRole != model.RoleRestaurant {
		return nil, errors.ErrRoleNotAllowed
	}
	if quantity < 0 {
		return nil, errors.ErrInvalidQuantity
	}

	listing := &model.Listing{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		AccountID:   ownerID,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return listing, nil
}

// UpdateListing overwrites a listing's fields. The caller must own the
// listing; the original tool skipped this check and anyone could edit
// anything.
func (s *catalogService) UpdateListing(ctx context.Context, ownerID uint, id uint, name, description string, quantity int) (*model.Listing, error) {
	if quantity < 0 {
		return nil, errors.ErrInvalidQuantity
	}

	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	if listing.AccountID != ownerID {
		return nil, errors.ErrNotListingOwner
	}

	listing.Name = name
	listing.Description = description
	listing.Quantity = quantity
	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return listing, nil
}

// DeleteListing removes a listing owned by the caller. Deleting an ID that
// no longer exists is a no-op.
func (s *catalogService) DeleteListing(ctx context.Context, ownerID uint, id uint) error {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return fmt.Errorf("find listing: %w", err)
	}
	if listing.AccountID != ownerID {
		return errors.ErrNotListingOwner
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	_ = s.cache.Delete(ctx, catalogCacheKey)
	return nil
}

// ListForOwner returns the caller's listings.
func (s *catalogService) ListForOwner(ctx context.Context, ownerID uint) ([]model.Listing, error) {
	return s.listingRepo.ListByOwner(ctx, ownerID)
}
