package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
)

const shippingMethodsKey = "shipping:methods"

// Flat-rate estimate parameters.
const (
	costPerWeightUnit = 5.0
	baseShippingCost  = 10.0
)

// ShippingService serves the seeded method list (cached in Redis) and the
// deterministic cost estimate.
type ShippingService struct {
	Repo     repository.ShippingRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewShippingService(repo repository.ShippingRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *ShippingService {
	return &ShippingService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func (s *ShippingService) ListMethods(ctx context.Context) ([]entity.ShippingMethod, error) {
	if s.Redis != nil {
		var cached []entity.ShippingMethod
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, shippingMethodsKey, &cached); err == nil && ok {
			return cached, nil
		}
	}
	methods, err := s.Repo.ListMethods(ctx)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, shippingMethodsKey, methods, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("shipping methods cache write failed")
		}
	}
	return methods, nil
}

type EstimateInput struct {
	Destination string
	Weight      float64
	Dimensions  entity.Dimensions
}

// Estimate computes the flat-rate cost: weight*5 + 10. Zero weight is valid
// and yields the base cost.
func (s *ShippingService) Estimate(ctx context.Context, in EstimateInput) (float64, error) {
	if in.Destination == "" {
		return 0, apperr.New(apperr.BadInput, "destination is required")
	}
	if in.Weight < 0 {
		return 0, apperr.New(apperr.BadInput, "weight must not be negative")
	}
	return in.Weight*costPerWeightUnit + baseShippingCost, nil
}
