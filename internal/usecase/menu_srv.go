package usecase

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type MenuService interface {
	GetMenu(ctx context.Context, category string) ([]entity.MenuItem, error)
	GetMenuItem(ctx context.Context, itemID string) (*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, doc entity.Document) (*response.InsertResult, error)
	UpdateMenuItem(ctx context.Context, itemID string, fields entity.Document) (*response.UpdateResult, error)
	DeleteMenuItem(ctx context.Context, itemID string) (*response.DeleteResult, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		log:      log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context, category string) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.FindAll(ctx, category)
	if err != nil {
		return nil, utils.ErrStore("Failed to get menu", err)
	}
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, itemID string) (*entity.MenuItem, error) {
	id, err := utils.ParseID(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid menu item ID", nil)
	}

	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrStore("Failed to get menu item", err)
	}
	if item == nil {
		return nil, utils.ErrNotFound("Menu item not found")
	}

	return item, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, doc entity.Document) (*response.InsertResult, error) {
	item, err := s.menuRepo.Create(ctx, doc)
	if err != nil {
		return nil, utils.ErrStore("Failed to create menu item", err)
	}

	s.log.Info("Menu item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name()),
		zap.String("category", item.Category()),
	)
	return response.Inserted(item.ID.String()), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, itemID string, fields entity.Document) (*response.UpdateResult, error) {
	id, err := utils.ParseID(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid menu item ID", nil)
	}

	fields = fields.Without(entity.IDField)
	if len(fields) == 0 {
		return nil, utils.ErrInvalidInput("No fields to update", nil)
	}

	outcome, err := s.menuRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrStore("Failed to update menu item", err)
	}

	return response.Updated(outcome.Matched, outcome.Modified), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, itemID string) (*response.DeleteResult, error) {
	id, err := utils.ParseID(itemID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid menu item ID", nil)
	}

	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		return nil, utils.ErrStore("Failed to delete menu item", err)
	}

	return response.Deleted(deleted), nil
}
