package model

import "time"

// OrderStatus represents the outcome of an order placement.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order is the immutable header of a placed order. Completed orders carry
// their line items; failed attempts are recorded without items so the
// catalog stays untouched.
type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	AccountID    uint        `json:"account_id" gorm:"not null;index"`
	Status       OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'completed';index"`
	ErrorMessage string      `json:"error_message,omitempty" gorm:"type:text"`
	CreatedAt    time.Time   `json:"created_at"`

	// Relations
	Account Account     `json:"-" gorm:"foreignKey:AccountID"`
	Items   []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}
