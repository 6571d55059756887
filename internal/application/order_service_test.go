package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func TestCreateOrderSetsInitialStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newFakeOrderRepo(), testLogger())

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		UserID:      "user-1",
		Items:       []string{"prod-1", "prod-2"},
		TotalAmount: 59.98,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPlaced, order.Status)
	assert.Equal(t, 59.98, order.TotalAmount)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrderRequiresItems(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), testLogger())

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{UserID: "user-1"})
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	_, err = svc.CreateOrder(context.Background(), CreateOrderInput{Items: []string{"prod-1"}})
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
}

func TestOrderStatusUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newFakeOrderRepo(), testLogger())

	order, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: "user-1", Items: []string{"p"}, TotalAmount: 10})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, "Shipped")
	require.NoError(t, err)
	assert.Equal(t, "Shipped", updated.Status)

	_, err = svc.UpdateStatus(ctx, "missing", "Shipped")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestDeleteOrderNotIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newFakeOrderRepo(), testLogger())

	order, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: "user-1", Items: []string{"p"}, TotalAmount: 10})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	err = svc.DeleteOrder(ctx, order.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = svc.GetOrder(ctx, order.ID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestListOrdersByUser(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(newFakeOrderRepo(), testLogger())

	for i := 0; i < 2; i++ {
		_, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: "user-1", Items: []string{"p"}, TotalAmount: 10})
		require.NoError(t, err)
	}
	_, err := svc.CreateOrder(ctx, CreateOrderInput{UserID: "user-2", Items: []string{"p"}, TotalAmount: 10})
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestCreateOrderUpstreamFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.fail = errors.New("write failed")
	svc := NewOrderService(repo, testLogger())

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{UserID: "u", Items: []string{"p"}, TotalAmount: 1})
	assert.True(t, apperr.IsKind(err, apperr.UpstreamFailure))
}
