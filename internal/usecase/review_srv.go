package usecase

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]entity.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrStore("Failed to get reviews", err)
	}
	return reviews, nil
}
