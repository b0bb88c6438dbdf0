package repository

import (
	"context"

	"gorm.io/gorm"

	"mealbridge/internal/model"
)

// ListingTotal is one row of the insight report: how much of a listing name
// has been ordered across all completed orders.
type ListingTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// OrderRepository defines order persistence operations. Stock decrements
// live here rather than on the listing repository because they only ever
// happen inside a placement transaction.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateItem(ctx context.Context, item *model.OrderItem) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	ListForAccount(ctx context.Context, accountID uint) ([]model.Order, error)
	DecrementListingStock(ctx context.Context, listingID uint, quantity int) (int64, error)
	ListingExists(ctx context.Context, listingID uint) (bool, error)
	OrderedTotalsByOwner(ctx context.Context, accountID uint) ([]ListingTotal, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order header.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateItem creates a single line item.
func (r *orderRepository) CreateItem(ctx context.Context, item *model.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// FindByID finds an order by ID with its items.
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListForAccount returns the orders placed by one account, newest first.
func (r *orderRepository) ListForAccount(ctx context.Context, accountID uint) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("account_id = ?", accountID).
		Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DecrementListingStock subtracts quantity from a listing in one guarded
// statement. Zero rows affected means the listing is missing or would go
// negative; either way nothing changed.
func (r *orderRepository) DecrementListingStock(ctx context.Context, listingID uint, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ? AND quantity >= ?", listingID, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	return res.RowsAffected, res.Error
}

// ListingExists reports whether a listing row exists.
func (r *orderRepository) ListingExists(ctx context.Context, listingID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Listing{}).
		Where("id = ?", listingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// OrderedTotalsByOwner aggregates ordered quantity per listing name across
// the owner's listings.
func (r *orderRepository) OrderedTotalsByOwner(ctx context.Context, accountID uint) ([]ListingTotal, error) {
	var totals []ListingTotal
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("listings.name AS name, SUM(order_items.quantity) AS total").
		Joins("JOIN listings ON listings.id = order_items.listing_id").
		Where("listings.account_id = ?", accountID).
		Group("listings.name").
		Order("listings.name").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// WithTransaction executes a function within a database transaction.
func (r *orderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &orderRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
