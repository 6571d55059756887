package entity

import "time"

const (
	PaymentStatusCompleted = "completed"
	RefundStatusRefunded   = "refunded"
)

// Payment is created directly as completed (no gateway round-trip) and is
// immutable thereafter except via Refund.
type Payment struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Refund is created only when its amount does not exceed the original payment.
type Refund struct {
	ID        string    `json:"id"`
	PaymentID string    `json:"paymentId"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
