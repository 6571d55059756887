package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

type OrderService struct {
	Repo   repository.OrderRepository
	Logger *logrus.Logger
}

func NewOrderService(repo repository.OrderRepository, logger *logrus.Logger) *OrderService {
	return &OrderService{Repo: repo, Logger: logger}
}

type CreateOrderInput struct {
	UserID      string
	Items       []string
	TotalAmount float64
}

// CreateOrder persists a new order with the fixed initial status. The total
// is caller-supplied and trusted; nothing is recomputed from the items.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*entity.Order, error) {
	if in.UserID == "" {
		return nil, apperr.New(apperr.BadInput, "userId is required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.New(apperr.BadInput, "order must contain at least one item")
	}
	order := &entity.Order{
		UserID:      in.UserID,
		Items:       in.Items,
		TotalAmount: in.TotalAmount,
		Status:      entity.OrderStatusPlaced,
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while creating the order", err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	if orderID == "" {
		return nil, apperr.New(apperr.BadInput, "order id is required")
	}
	order, err := s.Repo.GetByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Newf(apperr.NotFound, "order with id %s not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	if userID == "" {
		return nil, apperr.New(apperr.BadInput, "userId is required")
	}
	return s.Repo.ListByUser(ctx, userID)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	if orderID == "" {
		return nil, apperr.New(apperr.BadInput, "order id is required")
	}
	if status == "" {
		return nil, apperr.New(apperr.BadInput, "status is required")
	}
	order, err := s.Repo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Newf(apperr.NotFound, "order with id %s not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder deletes by key. Repeating the delete yields NotFound, never a
// second success.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return apperr.New(apperr.BadInput, "order id is required")
	}
	err := s.Repo.Delete(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.Newf(apperr.NotFound, "order with id %s not found", orderID)
	}
	return err
}
