package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

// ReviewService checks product existence before touching reviews.
type ReviewService struct {
	Repo     repository.ReviewRepository
	Products repository.ProductRepository
	Logger   *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, products repository.ProductRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Repo: repo, Products: products, Logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, productID string, rating int, comment string) (*entity.Review, error) {
	if productID == "" {
		return nil, apperr.New(apperr.BadInput, "productId is required")
	}
	if rating < 1 || rating > 5 {
		return nil, apperr.New(apperr.BadInput, "rating must be between 1 and 5")
	}
	_, err := s.Products.GetByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.BadInput, "invalid product id, product does not exist")
	}
	if err != nil {
		return nil, err
	}
	review := &entity.Review{ProductID: productID, Rating: rating, Comment: comment}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while creating the review", err)
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	if productID == "" {
		return nil, apperr.New(apperr.BadInput, "productId is required")
	}
	_, err := s.Products.GetByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "invalid product id, product does not exist")
	}
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByProduct(ctx, productID)
}

func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	if reviewID == "" {
		return apperr.New(apperr.BadInput, "review id is required")
	}
	err := s.Repo.Delete(ctx, reviewID)
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(apperr.NotFound, "review not found")
	}
	return err
}
