package repository

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MenuRepository interface {
	Create(ctx context.Context, doc entity.Document) (*entity.MenuItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	// FindAll lists the menu, narrowed to one category when category is set.
	FindAll(ctx context.Context, category string) ([]entity.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, fields entity.Document) (UpdateOutcome, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type menuRepository struct {
	menu *collection
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		menu: newCollection(db, tableMenu, log.With(zap.String("repository", "menu"))),
	}
}

func (r *menuRepository) Create(ctx context.Context, doc entity.Document) (*entity.MenuItem, error) {
	record, err := r.menu.insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &entity.MenuItem{Record: *record}, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	record, err := r.menu.findByID(ctx, id)
	if err != nil || record == nil {
		return nil, err
	}
	return &entity.MenuItem{Record: *record}, nil
}

func (r *menuRepository) FindAll(ctx context.Context, category string) ([]entity.MenuItem, error) {
	field := ""
	if category != "" {
		field = "category"
	}

	records, err := r.menu.findAll(ctx, field, category)
	if err != nil {
		return nil, err
	}

	items := make([]entity.MenuItem, len(records))
	for i, record := range records {
		items[i] = entity.MenuItem{Record: record}
	}
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, id uuid.UUID, fields entity.Document) (UpdateOutcome, error) {
	return r.menu.setFields(ctx, id, fields)
}

func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.menu.deleteByID(ctx, id)
}
