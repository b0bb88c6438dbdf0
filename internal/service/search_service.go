package service

import (
	"context"
	"fmt"
	"strings"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

// SearchResult carries the accounts matched by a directory search together
// with their listings and the unfiltered global catalog.
type SearchResult struct {
	Tag      string          `json:"tag"`
	Accounts []model.Account `json:"accounts"`
	Filtered []model.Listing `json:"filtered"`
	Catalog  []model.Listing `json:"catalog"`
}

// SearchService matches donor accounts by location or business name.
type SearchService interface {
	Search(ctx context.Context, tag string) (*SearchResult, error)
}

type searchService struct {
	accountRepo repository.AccountRepository
	listingRepo repository.ListingRepository
}

// NewSearchService creates a new search service.
func NewSearchService(accountRepo repository.AccountRepository, listingRepo repository.ListingRepository) SearchService {
	return &searchService{
		accountRepo: accountRepo,
		listingRepo: listingRepo,
	}
}

// Search runs two independent substring matches: location first, business
// name second. The first criterion with any hits wins outright; the two
// match sets are never unioned. A blank tag never reaches the directory.
func (s *searchService) Search(ctx context.Context, tag string) (*SearchResult, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, errors.ErrEmptyQuery
	}

	accounts, err := s.accountRepo.SearchByLocation(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("search by location: %w", err)
	}
	if len(accounts) == 0 {
		accounts, err = s.accountRepo.SearchByBusinessName(ctx, tag)
		if err != nil {
			return nil, fmt.Errorf("search by business name: %w", err)
		}
	}
	if len(accounts) == 0 {
		return nil, errors.ErrNoResults
	}

	ids := make([]uint, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}
	filtered, err := s.listingRepo.ListByOwners(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list matched listings: %w", err)
	}

	catalog, err := s.listingRepo.ListAllByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return &SearchResult{
		Tag:      tag,
		Accounts: accounts,
		Filtered: filtered,
		Catalog:  catalog,
	}, nil
}
