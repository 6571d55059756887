package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func TestEstimateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	svc := NewShippingService(&fakeShippingRepo{}, nil, 0, testLogger())

	cost, err := svc.Estimate(ctx, EstimateInput{Destination: "Amsterdam", Weight: 10})
	require.NoError(t, err)
	assert.Equal(t, 60.0, cost)

	// zero weight is valid and yields the base cost
	cost, err = svc.Estimate(ctx, EstimateInput{Destination: "Amsterdam", Weight: 0})
	require.NoError(t, err)
	assert.Equal(t, 10.0, cost)

	// dimensions do not affect the flat rate
	cost, err = svc.Estimate(ctx, EstimateInput{
		Destination: "Amsterdam",
		Weight:      2,
		Dimensions:  entity.Dimensions{Length: 100, Width: 100, Height: 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, cost)
}

func TestEstimateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewShippingService(&fakeShippingRepo{}, nil, 0, testLogger())

	_, err := svc.Estimate(ctx, EstimateInput{Weight: 1})
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	_, err = svc.Estimate(ctx, EstimateInput{Destination: "Amsterdam", Weight: -1})
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
}

func TestListMethodsWithoutRedis(t *testing.T) {
	repo := &fakeShippingRepo{methods: []entity.ShippingMethod{
		{ID: "1", Name: "Standard", Cost: 10},
		{ID: "2", Name: "Express", Cost: 25},
	}}
	svc := NewShippingService(repo, nil, 0, testLogger())

	methods, err := svc.ListMethods(context.Background())
	require.NoError(t, err)
	assert.Len(t, methods, 2)
	assert.Equal(t, 1, repo.calls)
}
