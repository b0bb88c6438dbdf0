package repository

import (
	"context"

	"gorm.io/gorm"

	"mealbridge/internal/model"
)

// AccountRepository defines account persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id uint) (*model.Account, error)
	FindByUsername(ctx context.Context, username string) (*model.Account, error)
	FindByBusinessName(ctx context.Context, businessName string) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
	SearchByLocation(ctx context.Context, tag string) ([]model.Account, error)
	SearchByBusinessName(ctx context.Context, tag string) ([]model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByID finds an account by ID.
func (r *accountRepository) FindByID(ctx context.Context, id uint) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUsername finds an account by its unique username.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByBusinessName finds an account by its unique business name.
func (r *accountRepository) FindByBusinessName(ctx context.Context, businessName string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("business_name = ?", businessName).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns the full account directory.
func (r *accountRepository) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// SearchByLocation returns accounts whose location contains the tag.
func (r *accountRepository) SearchByLocation(ctx context.Context, tag string) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Where("location LIKE ?", "%"+tag+"%").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// SearchByBusinessName returns accounts whose business name contains the tag.
func (r *accountRepository) SearchByBusinessName(ctx context.Context, tag string) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Where("business_name LIKE ?", "%"+tag+"%").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
