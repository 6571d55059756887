package entity

import "time"

// Order statuses. Status is free text beyond the fixed initial value.
const OrderStatusPlaced = "Order Placed"

// Order holds opaque item identifiers and a caller-supplied total; nothing is
// recomputed from the items.
type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Items       []string  `json:"items"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
