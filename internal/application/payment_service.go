package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-commerce-api/internal/domain/entity"
	"github.com/oksasatya/go-commerce-api/internal/domain/repository"
	"github.com/oksasatya/go-commerce-api/pkg/apperr"
	"github.com/oksasatya/go-commerce-api/pkg/helpers"
	"github.com/oksasatya/go-commerce-api/pkg/mailer"
)

type PaymentService struct {
	Repo        repository.PaymentRepository
	Users       repository.UserRepository
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewPaymentService(repo repository.PaymentRepository, users repository.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *PaymentService {
	return &PaymentService{Repo: repo, Users: users, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type CreatePaymentInput struct {
	OrderID       string
	UserID        string
	Amount        float64
	PaymentMethod string
}

// CreatePayment records the payment directly as completed; there is no
// gateway round-trip. A receipt email job is enqueued best effort.
func (s *PaymentService) CreatePayment(ctx context.Context, in CreatePaymentInput) (*entity.Payment, error) {
	switch {
	case in.OrderID == "":
		return nil, apperr.New(apperr.BadInput, "orderId is required")
	case in.UserID == "":
		return nil, apperr.New(apperr.BadInput, "userId is required")
	case in.Amount <= 0:
		return nil, apperr.New(apperr.BadInput, "amount must be greater than 0")
	case in.PaymentMethod == "":
		return nil, apperr.New(apperr.BadInput, "paymentMethod is required")
	}
	payment := &entity.Payment{
		OrderID:       in.OrderID,
		UserID:        in.UserID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.PaymentStatusCompleted,
	}
	if err := s.Repo.CreatePayment(ctx, payment); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while processing the payment", err)
	}
	s.enqueueReceipt(ctx, payment)
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*entity.Payment, error) {
	if paymentID == "" {
		return nil, apperr.New(apperr.BadInput, "payment id is required")
	}
	payment, err := s.Repo.GetPayment(ctx, paymentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "payment not found")
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ProcessRefund creates a refund for an existing payment. A refund equal to
// the original amount succeeds; one cent more is rejected.
func (s *PaymentService) ProcessRefund(ctx context.Context, paymentID string, refundAmount float64) (*entity.Refund, error) {
	if paymentID == "" {
		return nil, apperr.New(apperr.BadInput, "paymentId is required")
	}
	if refundAmount <= 0 {
		return nil, apperr.New(apperr.BadInput, "refundAmount must be greater than 0")
	}
	payment, err := s.Repo.GetPayment(ctx, paymentID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.NotFound, "payment not found")
	}
	if err != nil {
		return nil, err
	}
	if refundAmount > payment.Amount {
		return nil, apperr.New(apperr.BadInput, "refund amount exceeds the original payment amount")
	}
	refund := &entity.Refund{
		PaymentID: payment.ID,
		Amount:    refundAmount,
		Status:    entity.RefundStatusRefunded,
	}
	if err := s.Repo.CreateRefund(ctx, refund); err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "error occurred while processing the refund", err)
	}
	return refund, nil
}

func (s *PaymentService) enqueueReceipt(ctx context.Context, p *entity.Payment) {
	if s.Pub == nil || !s.MailEnabled || s.Users == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, p.UserID)
	if err != nil || u == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplatePaymentReceipt,
		Data: map[string]any{
			"Username": u.Username,
			"OrderID":  p.OrderID,
			"Amount":   fmt.Sprintf("%.2f", p.Amount),
			"Method":   p.PaymentMethod,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("payment_id", p.ID).Warn("receipt email enqueue failed")
	}
}
