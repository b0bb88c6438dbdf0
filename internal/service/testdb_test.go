package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mealbridge/internal/model"
)

// newTestDB opens a fresh in-memory database with the full schema. The
// SQL-heavy services (orders, search, dashboard, reports) are tested against
// real queries rather than mocks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&model.Account{},
		&model.Listing{},
		&model.Order{},
		&model.OrderItem{},
	)
	assert.NoError(t, err)
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, username, businessName, location string, role model.Role) *model.Account {
	t.Helper()
	account := &model.Account{
		Username:     username,
		PasswordHash: "x",
		BusinessName: businessName,
		Location:     location,
		Role:         role,
	}
	assert.NoError(t, db.Create(account).Error)
	return account
}

func seedListing(t *testing.T, db *gorm.DB, owner *model.Account, name string, quantity int) *model.Listing {
	t.Helper()
	listing := &model.Listing{
		Name:      name,
		Quantity:  quantity,
		AccountID: owner.ID,
	}
	assert.NoError(t, db.Create(listing).Error)
	return listing
}
