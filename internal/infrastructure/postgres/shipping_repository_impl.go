package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

type ShippingRepository struct {
	pool *pgxpool.Pool
}

func NewShippingRepository(pool *pgxpool.Pool) *ShippingRepository {
	return &ShippingRepository{pool: pool}
}

func (r *ShippingRepository) ListMethods(ctx context.Context) ([]entity.ShippingMethod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, cost, created_at, updated_at
		FROM shipping_methods
		ORDER BY cost
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	methods := make([]entity.ShippingMethod, 0)
	for rows.Next() {
		var m entity.ShippingMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.Cost, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

var _ repository.ShippingRepository = (*ShippingRepository)(nil)
