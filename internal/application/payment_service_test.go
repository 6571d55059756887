package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
)

func newPaymentService(repo *fakePaymentRepo) *PaymentService {
	return NewPaymentService(repo, newFakeUserRepo(), testLogger(), nil, false)
}

func TestCreatePaymentCompletesImmediately(t *testing.T) {
	ctx := context.Background()
	svc := newPaymentService(newFakePaymentRepo())

	payment, err := svc.CreatePayment(ctx, CreatePaymentInput{
		OrderID:       "order-1",
		UserID:        "user-1",
		Amount:        100.00,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.NotEmpty(t, payment.ID)
}

func TestCreatePaymentValidation(t *testing.T) {
	ctx := context.Background()
	svc := newPaymentService(newFakePaymentRepo())

	tests := []struct {
		name string
		in   CreatePaymentInput
	}{
		{"missing order", CreatePaymentInput{UserID: "u", Amount: 1, PaymentMethod: "card"}},
		{"missing user", CreatePaymentInput{OrderID: "o", Amount: 1, PaymentMethod: "card"}},
		{"zero amount", CreatePaymentInput{OrderID: "o", UserID: "u", PaymentMethod: "card"}},
		{"negative amount", CreatePaymentInput{OrderID: "o", UserID: "u", Amount: -5, PaymentMethod: "card"}},
		{"missing method", CreatePaymentInput{OrderID: "o", UserID: "u", Amount: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePayment(ctx, tt.in)
			assert.True(t, apperr.IsKind(err, apperr.BadInput))
		})
	}
}

func TestProcessRefundBoundary(t *testing.T) {
	ctx := context.Background()
	svc := newPaymentService(newFakePaymentRepo())

	payment, err := svc.CreatePayment(ctx, CreatePaymentInput{
		OrderID: "order-1", UserID: "user-1", Amount: 100.00, PaymentMethod: "card",
	})
	require.NoError(t, err)

	// one cent over the original amount is rejected
	_, err = svc.ProcessRefund(ctx, payment.ID, 100.01)
	assert.True(t, apperr.IsKind(err, apperr.BadInput))

	// exactly the original amount succeeds
	refund, err := svc.ProcessRefund(ctx, payment.ID, 100.00)
	require.NoError(t, err)
	assert.Equal(t, entity.RefundStatusRefunded, refund.Status)
	assert.Equal(t, payment.ID, refund.PaymentID)
	assert.Equal(t, 100.00, refund.Amount)
}

func TestProcessRefundPartial(t *testing.T) {
	ctx := context.Background()
	svc := newPaymentService(newFakePaymentRepo())

	payment, err := svc.CreatePayment(ctx, CreatePaymentInput{
		OrderID: "order-1", UserID: "user-1", Amount: 50, PaymentMethod: "card",
	})
	require.NoError(t, err)

	refund, err := svc.ProcessRefund(ctx, payment.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 20.0, refund.Amount)
}

func TestProcessRefundUnknownPayment(t *testing.T) {
	svc := newPaymentService(newFakePaymentRepo())
	_, err := svc.ProcessRefund(context.Background(), "missing", 10)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestProcessRefundRejectsNonPositive(t *testing.T) {
	svc := newPaymentService(newFakePaymentRepo())
	_, err := svc.ProcessRefund(context.Background(), "p", 0)
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
	_, err = svc.ProcessRefund(context.Background(), "p", -1)
	assert.True(t, apperr.IsKind(err, apperr.BadInput))
}

func TestGetPaymentNotFound(t *testing.T) {
	svc := newPaymentService(newFakePaymentRepo())
	_, err := svc.GetPayment(context.Background(), "missing")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
