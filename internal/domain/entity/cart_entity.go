package entity

import "time"

// Cart groups a user's pending items. One cart per user by convention; the
// schema does not enforce uniqueness.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is owned by exactly one cart.
type CartItem struct {
	ID        string `json:"id"`
	CartID    string `json:"cartId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
