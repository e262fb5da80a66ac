package repository

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartRepository interface {
	Create(ctx context.Context, doc entity.Document) (*entity.CartEntry, error)
	// FindAll lists cart entries, only the owner's when email is set.
	FindAll(ctx context.Context, email string) ([]entity.CartEntry, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type cartRepository struct {
	carts *collection
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		carts: newCollection(db, tableCarts, log.With(zap.String("repository", "cart"))),
	}
}

func (r *cartRepository) Create(ctx context.Context, doc entity.Document) (*entity.CartEntry, error) {
	record, err := r.carts.insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &entity.CartEntry{Record: *record}, nil
}

func (r *cartRepository) FindAll(ctx context.Context, email string) ([]entity.CartEntry, error) {
	field := ""
	if email != "" {
		field = "email"
	}

	records, err := r.carts.findAll(ctx, field, email)
	if err != nil {
		return nil, err
	}

	entries := make([]entity.CartEntry, len(records))
	for i, record := range records {
		entries[i] = entity.CartEntry{Record: record}
	}
	return entries, nil
}

func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.carts.deleteByID(ctx, id)
}
