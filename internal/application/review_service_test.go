package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func seedProduct(t *testing.T, repo *fakeProductRepo) string {
	t.Helper()
	p := &entity.Product{Name: "Headphones", Price: 79.99}
	require.NoError(t, repo.Create(context.Background(), p))
	return p.ID
}

func TestCreateReviewChecksProduct(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo()
	svc := NewReviewService(newFakeReviewRepo(), products, testLogger())
	productID := seedProduct(t, products)

	review, err := svc.Create(ctx, productID, 4, "solid")
	require.NoError(t, err)
	assert.Equal(t, productID, review.ProductID)

	// unknown product is rejected as bad input, not as a miss
	_, err = svc.Create(ctx, "missing-product", 4, "solid")
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
}

func TestCreateReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo()
	svc := NewReviewService(newFakeReviewRepo(), products, testLogger())
	productID := seedProduct(t, products)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, productID, rating, "")
		assert.True(t, apperr.IsKind(err, apperr.BadInput), "rating %d", rating)
	}
	for _, rating := range []int{1, 5} {
		_, err := svc.Create(ctx, productID, rating, "")
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestListReviewsUnknownProduct(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), newFakeProductRepo(), testLogger())
	_, err := svc.ListByProduct(context.Background(), "missing")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	products := newFakeProductRepo()
	svc := NewReviewService(newFakeReviewRepo(), products, testLogger())
	productID := seedProduct(t, products)

	review, err := svc.Create(ctx, productID, 3, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, review.ID))
	err = svc.Delete(ctx, review.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
