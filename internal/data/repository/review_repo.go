package repository

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]entity.Review, error)
}

type reviewRepository struct {
	reviews *collection
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		reviews: newCollection(db, tableReviews, log.With(zap.String("repository", "review"))),
	}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	records, err := r.reviews.findAll(ctx, "", "")
	if err != nil {
		return nil, err
	}

	reviews := make([]entity.Review, len(records))
	for i, record := range records {
		reviews[i] = entity.Review{Record: record}
	}
	return reviews, nil
}
