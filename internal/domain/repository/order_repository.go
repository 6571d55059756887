package repository

import (
	"context"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
)

// OrderRepository defines order database operations.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
