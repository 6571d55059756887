package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

// CartService orchestrates cart operations: validate, look up, single
// mutation, classified result.
type CartService struct {
	Repo   repository.CartRepository
	Logger *logrus.Logger
}

func NewCartService(repo repository.CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{Repo: repo, Logger: logger}
}

func (s *CartService) CreateCart(ctx context.Context, userID string) (*entity.Cart, error) {
	if userID == "" {
		return nil, apperr.New(apperr.BadInput, "userId is required")
	}
	cart := &entity.Cart{UserID: userID}
	if err := s.Repo.Create(ctx, cart); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while creating the cart", err)
	}
	return cart, nil
}

// GetCart returns the cart with its items.
func (s *CartService) GetCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	if cartID == "" {
		return nil, apperr.New(apperr.BadInput, "cart id is required")
	}
	cart, err := s.Repo.GetByID(ctx, cartID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "cart not found")
	}
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return cart, nil
}

// AddItem looks up the parent cart first, then inserts the item. Quantity zero
// is structurally valid input but semantically rejected.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, quantity int) (*entity.CartItem, error) {
	switch {
	case cartID == "":
		return nil, apperr.New(apperr.BadInput, "cart id is required")
	case productID == "":
		return nil, apperr.New(apperr.BadInput, "productId is required")
	case quantity < 1:
		return nil, apperr.New(apperr.BadInput, "quantity must be at least 1")
	}
	cart, err := s.Repo.GetByID(ctx, cartID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "cart not found")
	}
	if err != nil {
		return nil, err
	}
	item := &entity.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
	if err := s.Repo.AddItem(ctx, item); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while adding the item to the cart", err)
	}
	return item, nil
}

func (s *CartService) UpdateItem(ctx context.Context, itemID string, quantity int) (*entity.CartItem, error) {
	if itemID == "" {
		return nil, apperr.New(apperr.BadInput, "item id is required")
	}
	if quantity < 1 {
		return nil, apperr.New(apperr.BadInput, "quantity must be at least 1")
	}
	item, err := s.Repo.UpdateItemQuantity(ctx, itemID, quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "cart item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	if itemID == "" {
		return apperr.New(apperr.BadInput, "item id is required")
	}
	err := s.Repo.DeleteItem(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "cart item not found")
	}
	return err
}

// ClearCart removes the cart's items. The cart row itself survives; clearing
// is not cart deletion.
func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	if cartID == "" {
		return apperr.New(apperr.BadInput, "cart id is required")
	}
	cart, err := s.Repo.GetByID(ctx, cartID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "cart not found")
	}
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteItemsByCart(ctx, cart.ID); err != nil {
		return apperr.Wrap(apperr.UpstreamFailure, "error occurred while clearing the cart", err)
	}
	return nil
}
