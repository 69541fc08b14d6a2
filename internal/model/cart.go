package model

import "time"

// CartLine is one product in a user's cart. A user has at most one line per
// product; adding the same product again increments Quantity.
type CartLine struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartItem is a cart line joined with the product as it exists right now.
// Product is nil when the referenced product has been deleted.
type CartItem struct {
	CartLine
	Product *Product `json:"product,omitempty"`
}
