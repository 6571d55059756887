package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (product_id, rating, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, rv.ProductID, rv.Rating, rv.Comment)
	return row.Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	rv := &entity.Review{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, product_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`, id)

	if err := row.Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Comment,
		&rv.CreatedAt, &rv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]entity.Review, 0)
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Comment,
			&rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
