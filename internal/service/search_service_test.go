package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mealbridge/internal/errors"
	"mealbridge/internal/model"
	"mealbridge/internal/repository"
)

func newSearchFixture(t *testing.T) (SearchService, *model.Account, *model.Account) {
	db := newTestDB(t)
	stockholm := seedAccount(t, db, "trattoria", "Trattoria Bella", "Stockholm", model.RoleRestaurant)
	uppsala := seedAccount(t, db, "greenbowl", "Stockholm Deli", "Uppsala", model.RoleRestaurant)
	seedListing(t, db, stockholm, "Pizza", 5)
	seedListing(t, db, stockholm, "Focaccia", 3)
	seedListing(t, db, uppsala, "Soup", 8)

	svc := NewSearchService(repository.NewAccountRepository(db), repository.NewListingRepository(db))
	return svc, stockholm, uppsala
}

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("location match wins over business name", func(t *testing.T) {
		// "Stockholm" matches one account's location and another's business
		// name; only the location matches are returned.
		svc, stockholm, _ := newSearchFixture(t)

		result, err := svc.Search(ctx, "Stockholm")
		assert.NoError(t, err)
		assert.Len(t, result.Accounts, 1)
		assert.Equal(t, stockholm.ID, result.Accounts[0].ID)
		assert.Len(t, result.Filtered, 2)
		for _, listing := range result.Filtered {
			assert.Equal(t, stockholm.ID, listing.AccountID)
		}
		assert.Len(t, result.Catalog, 3)
	})

	t.Run("falls back to business name", func(t *testing.T) {
		svc, _, uppsala := newSearchFixture(t)

		result, err := svc.Search(ctx, "Deli")
		assert.NoError(t, err)
		assert.Len(t, result.Accounts, 1)
		assert.Equal(t, uppsala.ID, result.Accounts[0].ID)
		assert.Len(t, result.Filtered, 1)
		assert.Equal(t, "Soup", result.Filtered[0].Name)
	})

	t.Run("substring match is enough", func(t *testing.T) {
		svc, _, _ := newSearchFixture(t)

		result, err := svc.Search(ctx, "ppsal")
		assert.NoError(t, err)
		assert.Len(t, result.Accounts, 1)
	})

	t.Run("no match yields not found", func(t *testing.T) {
		svc, _, _ := newSearchFixture(t)

		_, err := svc.Search(ctx, "Gothenburg")
		assert.ErrorIs(t, err, errors.ErrNoResults)
	})
}

func TestSearchService_EmptyTagNeverQueriesDirectory(t *testing.T) {
	repo := new(MockAccountRepository)
	svc := NewSearchService(repo, nil)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, errors.ErrEmptyQuery)
	repo.AssertNotCalled(t, "SearchByLocation", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SearchByBusinessName", mock.Anything, mock.Anything)
}
