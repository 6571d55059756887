package repository

import (
	"context"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
)

// PaymentRepository defines payment and refund database operations.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *entity.Payment) error
	GetPayment(ctx context.Context, id string) (*entity.Payment, error)
	CreateRefund(ctx context.Context, r *entity.Refund) error
}
