package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, items, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, o.UserID, o.Items, o.TotalAmount, o.Status)
	return row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, items, total_amount, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	if err := row.Scan(&o.ID, &o.UserID, &o.Items, &o.TotalAmount, &o.Status,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, items, total_amount, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Items, &o.TotalAmount, &o.Status,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.pool.QueryRow(ctx, `
		UPDATE orders
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, items, total_amount, status, created_at, updated_at
	`, status, id)

	if err := row.Scan(&o.ID, &o.UserID, &o.Items, &o.TotalAmount, &o.Status,
		&o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
