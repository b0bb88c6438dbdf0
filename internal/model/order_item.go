package model

// OrderItem is one listing-quantity pair within an order. Items are written
// exactly once, alongside their order header, and never touched again.
type OrderItem struct {
	ListingID uint `json:"listing_id" gorm:"primaryKey;autoIncrement:false"`
	OrderID   uint `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	Quantity  int  `json:"quantity" gorm:"not null"`

	// Relations
	Listing Listing `json:"-" gorm:"foreignKey:ListingID"`
	Order   Order   `json:"-" gorm:"foreignKey:OrderID"`
}
