package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mealbridge/internal/cache"
	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

const catalogCacheTTL = 30 * time.Second

// DashboardView is the role-shaped dashboard payload. Restaurants see only
// their own listings; NPOs additionally see the global catalog, the account
// directory and their own orders.
type DashboardView struct {
	Role     model.Role      `json:"role"`
	Listings []model.Listing `json:"listings"`
	Accounts []model.Account `json:"accounts,omitempty"`
	Orders   []model.Order   `json:"orders,omitempty"`
}

// npoCatalog is the cacheable, account-independent part of the NPO view.
type npoCatalog struct {
	Listings []model.Listing `json:"listings"`
	Accounts []model.Account `json:"accounts"`
}

// DashboardService builds the per-role dashboard. Scope is derived from the
// authenticated account only, never from request parameters.
type DashboardService interface {
	Render(ctx context.Context, accountID uint) (*DashboardView, error)
}

type dashboardService struct {
	accountRepo repository.AccountRepository
	listingRepo repository.ListingRepository
	orderRepo   repository.OrderRepository
	cache       *cache.Client
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	accountRepo repository.AccountRepository,
	listingRepo repository.ListingRepository,
	orderRepo repository.OrderRepository,
	cache *cache.Client,
) DashboardService {
	return &dashboardService{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
		orderRepo:   orderRepo,
		cache:       cache,
	}
}

// Render builds the dashboard for the authenticated account.
func (s *dashboardService) Render(ctx context.Context, accountID uint) (*DashboardView, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, errors.ErrAccountNotFound
	}

	switch account.Role {
	case model.RoleRestaurant:
		return s.renderRestaurant(ctx, account)
	case model.RoleNPO:
		return s.renderNPO(ctx, account)
	default:
		return nil, errors.ErrRoleNotAllowed
	}
}

func (s *dashboardService) renderRestaurant(ctx context.Context, account *model.Account) (*DashboardView, error) {
	listings, err := s.listingRepo.ListByOwner(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("list own listings: %w", err)
	}
	return &DashboardView{
		Role:     model.RoleRestaurant,
		Listings: listings,
	}, nil
}

func (s *dashboardService) renderNPO(ctx context.Context, account *model.Account) (*DashboardView, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListForAccount(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("list own orders: %w", err)
	}

	return &DashboardView{
		Role:     model.RoleNPO,
		Listings: catalog.Listings,
		Accounts: catalog.Accounts,
		Orders:   orders,
	}, nil
}

// loadCatalog serves the global catalog and directory from cache when it
// can; catalog writes and order placements invalidate the key.
func (s *dashboardService) loadCatalog(ctx context.Context) (*npoCatalog, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached npoCatalog
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	listings, err := s.listingRepo.ListAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	catalog := &npoCatalog{Listings: listings, Accounts: accounts}
	if payload, err := json.Marshal(catalog); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL)
	}
	return catalog, nil
}
