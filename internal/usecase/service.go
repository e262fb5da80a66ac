package usecase

import (
	"context"

	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// PaymentGateway creates payment intents with the card provider.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64) (string, error)
}

// EventPublisher delivers domain events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}

// External groups the third-party clients owned by main.
type External struct {
	Payments PaymentGateway
	Events   EventPublisher
}

type Service struct {
	Auth    AuthService
	User    UserService
	Menu    MenuService
	Review  ReviewService
	Cart    CartService
	Payment PaymentService
	Stats   StatsService
}

func NewService(repo *repository.Repository, tokens *utils.TokenManager, ext External, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(tokens, log),
		User:    NewUserService(repo.User, log),
		Menu:    NewMenuService(repo.Menu, log),
		Review:  NewReviewService(repo.Review, log),
		Cart:    NewCartService(repo.Cart, log),
		Payment: NewPaymentService(repo.Payment, ext.Payments, ext.Events, log),
		Stats:   NewStatsService(repo.Stats, log),
	}
}
