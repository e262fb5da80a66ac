package repository

import (
	"context"
	"errors"

	"bistro-boss/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	db      database.PgxIface
	User    UserRepository
	Menu    MenuRepository
	Review  ReviewRepository
	Cart    CartRepository
	Payment PaymentRepository
	Stats   StatsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		db:      db,
		User:    NewUserRepository(db, log),
		Menu:    NewMenuRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Cart:    NewCartRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Stats:   NewStatsRepository(db, log),
	}
}

// Ping checks that the document store is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("database is not configured")
	}
	return r.db.Ping(ctx)
}
