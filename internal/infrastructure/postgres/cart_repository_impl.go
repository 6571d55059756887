package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) Create(ctx context.Context, c *entity.Cart) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, c.UserID)
	return row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CartRepository) GetByID(ctx context.Context, id string) (*entity.Cart, error) {
	c := &entity.Cart{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE id = $1
	`, id)

	if err := row.Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id
	`, item.CartID, item.ProductID, item.Quantity)
	return row.Scan(&item.ID)
}

func (r *CartRepository) GetItem(ctx context.Context, itemID string) (*entity.CartItem, error) {
	item := &entity.CartItem{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items
		WHERE id = $1
	`, itemID)

	if err := row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error) {
	item := &entity.CartItem{}
	row := r.pool.QueryRow(ctx, `
		UPDATE cart_items
		SET quantity = $1
		WHERE id = $2
		RETURNING id, cart_id, product_id, quantity
	`, quantity, itemID)

	if err := row.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CartRepository) DeleteItemsByCart(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

func (r *CartRepository) ListItems(ctx context.Context, cartID string) ([]entity.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, cart_id, product_id, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.CartItem, 0)
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

var _ repository.CartRepository = (*CartRepository)(nil)
