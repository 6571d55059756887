package repository

import (
	"context"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
)

// ShippingRepository reads the seeded shipping methods.
type ShippingRepository interface {
	ListMethods(ctx context.Context) ([]entity.ShippingMethod, error)
}
