package repository

import (
	"context"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
)

// CartRepository defines cart and cart-item database operations. Each method
// issues exactly one store call.
type CartRepository interface {
	Create(ctx context.Context, c *entity.Cart) error
	GetByID(ctx context.Context, id string) (*entity.Cart, error)
	AddItem(ctx context.Context, item *entity.CartItem) error
	GetItem(ctx context.Context, itemID string) (*entity.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error)
	DeleteItem(ctx context.Context, itemID string) error
	DeleteItemsByCart(ctx context.Context, cartID string) error
	ListItems(ctx context.Context, cartID string) ([]entity.CartItem, error)
}
