package model

import "time"

// Role identifies which side of the platform an account belongs to.
type Role string

const (
	// RoleRestaurant is a donor account that manages food listings.
	RoleRestaurant Role = "restaurant"
	// RoleNPO is a recipient account that places orders against listings.
	RoleNPO Role = "npo"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleRestaurant || r == RoleNPO
}

// Account represents a registered restaurant or NPO.
// Role is fixed at registration and never changes afterwards.
type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	BusinessName string    `json:"business_name" gorm:"uniqueIndex;size:128;not null"`
	Location     string    `json:"location" gorm:"size:128;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Listings []Listing `json:"listings,omitempty" gorm:"foreignKey:AccountID"`
	Orders   []Order   `json:"orders,omitempty" gorm:"foreignKey:AccountID"`
}
