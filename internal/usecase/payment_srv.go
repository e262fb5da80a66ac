package usecase

import (
	"context"
	"errors"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/payment"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// RoutingKeyOrderPlaced is published once per recorded payment.
const RoutingKeyOrderPlaced = "order.placed"

const publishTimeout = 5 * time.Second

// OrderPlacedEvent tells downstream consumers (kitchen, notifications) that
// a checkout completed.
type OrderPlacedEvent struct {
	PaymentID     string    `json:"paymentId"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId,omitempty"`
	MenuItemIDs   []string  `json:"menuItemIds,omitempty"`
	PlacedAt      time.Time `json:"placedAt"`
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req *request.PaymentIntentRequest) (*response.PaymentIntentResponse, error)
	RecordPayment(ctx context.Context, doc entity.Document, cartIDs []string) (*response.RecordPaymentResponse, error)
	// GetPayments lists the requester's own payments only.
	GetPayments(ctx context.Context, requesterEmail, email string) ([]entity.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
	events      EventPublisher
	now         func() time.Time
	log         *zap.Logger
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
	events EventPublisher,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		events:      events,
		now:         time.Now,
		log:         log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, req *request.PaymentIntentRequest) (*response.PaymentIntentResponse, error) {
	amount := utils.ToCents(req.Price)
	if amount < 1 {
		return nil, utils.ErrInvalidInput("Price is too small", map[string]string{"price": "Must be at least one cent"})
	}

	secret, err := s.gateway.CreatePaymentIntent(ctx, amount)
	if errors.Is(err, payment.ErrNotConfigured) {
		return nil, utils.ErrProvider("Payments are not available", err)
	}
	if err != nil {
		return nil, utils.ErrProvider("Failed to create payment intent", err)
	}

	return &response.PaymentIntentResponse{ClientSecret: secret}, nil
}

// RecordPayment stores the payment and removes the purchased cart entries,
// then announces the order. A failed announcement is logged only.
func (s *paymentService) RecordPayment(ctx context.Context, doc entity.Document, cartIDs []string) (*response.RecordPaymentResponse, error) {
	placedAt := s.now().UTC()

	doc = doc.Without(entity.IDField)
	if _, ok := doc["date"]; !ok {
		doc["date"] = placedAt.Format(time.RFC3339)
	}
	if _, ok := doc["status"]; !ok {
		doc["status"] = string(entity.PaymentStatusPending)
	}

	paid, deleted, err := s.paymentRepo.CreateAndClearCart(ctx, doc, cartIDs)
	if err != nil {
		return nil, utils.ErrStore("Failed to record payment", err)
	}

	s.publishOrderPlaced(ctx, paid, placedAt)

	return &response.RecordPaymentResponse{
		PaymentResult: response.Inserted(paid.ID.String()),
		DeleteResult:  response.Deleted(deleted),
	}, nil
}

func (s *paymentService) GetPayments(ctx context.Context, requesterEmail, email string) ([]entity.Payment, error) {
	if requesterEmail != email {
		s.log.Warn("Payment history requested for another user",
			zap.String("requester", requesterEmail),
			zap.String("email", email),
		)
		return nil, utils.ErrForbidden("Forbidden access")
	}

	payments, err := s.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrStore("Failed to get payments", err)
	}
	return payments, nil
}

func (s *paymentService) publishOrderPlaced(ctx context.Context, paid *entity.Payment, placedAt time.Time) {
	event := OrderPlacedEvent{
		PaymentID:     paid.ID.String(),
		Email:         paid.Email(),
		Price:         paid.Price(),
		TransactionID: paid.Doc.String("transactionId"),
		MenuItemIDs:   paid.MenuItemIDs(),
		PlacedAt:      placedAt,
	}

	// the payment is committed, so the client going away must not cancel this
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.events.PublishJSON(pubCtx, RoutingKeyOrderPlaced, event); err != nil {
		s.log.Error("Failed to publish order event",
			zap.Error(err),
			zap.String("payment_id", event.PaymentID),
		)
	}
}
