package repository

import (
	"context"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
)

// ProductRepository defines product database operations.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines category database operations.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id string) error
}

// ReviewRepository defines review database operations.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Review, error)
	Delete(ctx context.Context, id string) error
}
