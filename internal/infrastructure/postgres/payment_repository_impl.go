package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, p *entity.Payment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO payments (order_id, user_id, amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, p.OrderID, p.UserID, p.Amount, p.PaymentMethod, p.Status)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	p := &entity.Payment{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, order_id, user_id, amount, payment_method, status, created_at
		FROM payments
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.OrderID, &p.UserID, &p.Amount, &p.PaymentMethod,
		&p.Status, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) CreateRefund(ctx context.Context, rf *entity.Refund) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO refunds (payment_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, rf.PaymentID, rf.Amount, rf.Status)
	return row.Scan(&rf.ID, &rf.CreatedAt)
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
