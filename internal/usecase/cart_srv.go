package usecase

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	GetCart(ctx context.Context, email string) ([]entity.CartEntry, error)
	AddToCart(ctx context.Context, doc entity.Document) (*response.InsertResult, error)
	RemoveFromCart(ctx context.Context, entryID string) (*response.DeleteResult, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	log      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, email string) ([]entity.CartEntry, error) {
	entries, err := s.cartRepo.FindAll(ctx, email)
	if err != nil {
		return nil, utils.ErrStore("Failed to get cart", err)
	}
	return entries, nil
}

func (s *cartService) AddToCart(ctx context.Context, doc entity.Document) (*response.InsertResult, error) {
	entry, err := s.cartRepo.Create(ctx, doc)
	if err != nil {
		return nil, utils.ErrStore("Failed to add to cart", err)
	}

	s.log.Debug("Cart entry added",
		zap.String("entry_id", entry.ID.String()),
		zap.String("email", entry.Email()),
		zap.String("menu_item_id", entry.MenuItemID()),
	)
	return response.Inserted(entry.ID.String()), nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, entryID string) (*response.DeleteResult, error) {
	id, err := utils.ParseID(entryID)
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid cart entry ID", nil)
	}

	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		return nil, utils.ErrStore("Failed to remove cart entry", err)
	}

	return response.Deleted(deleted), nil
}
