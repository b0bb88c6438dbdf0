package model

import "time"

// Listing represents a unit of surplus food offered by a restaurant.
// Quantity never goes below zero; order placement rejects any line item
// that would overdraw it.
type Listing struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:64;not null;index"`
	Description string    `json:"description" gorm:"size:255"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0"`
	AccountID   uint      `json:"account_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Account Account `json:"-" gorm:"foreignKey:AccountID"`
}
