package usecase

import (
	"context"
	"testing"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMenuService_GetMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return 404 for an unknown item", func(t *testing.T) {
		menu := new(MockMenuRepository)
		id := uuid.New()
		menu.On("FindByID", ctx, id).Return(nil, nil).Once()

		_, err := NewMenuService(menu, zap.NewNop()).GetMenuItem(ctx, id.String())
		assert.Equal(t, utils.KindNotFound, utils.AsAppError(err).Kind)
	})

	t.Run("Should reject a malformed id", func(t *testing.T) {
		menu := new(MockMenuRepository)

		_, err := NewMenuService(menu, zap.NewNop()).GetMenuItem(ctx, "42")
		assert.Equal(t, utils.KindInvalidInput, utils.AsAppError(err).Kind)
		menu.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestMenuService_UpdateMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Should never overwrite the id", func(t *testing.T) {
		menu := new(MockMenuRepository)
		id := uuid.New()
		menu.On("Update", ctx, id, entity.Document{"price": 9.5}).
			Return(repository.UpdateOutcome{Matched: 1, Modified: 1}, nil).Once()

		result, err := NewMenuService(menu, zap.NewNop()).
			UpdateMenuItem(ctx, id.String(), entity.Document{"_id": "other", "price": 9.5})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ModifiedCount)
		menu.AssertExpectations(t)
	})

	t.Run("Should report matched but unmodified for identical values", func(t *testing.T) {
		menu := new(MockMenuRepository)
		id := uuid.New()
		menu.On("Update", ctx, id, entity.Document{"price": 9.5}).
			Return(repository.UpdateOutcome{Matched: 1, Modified: 0}, nil).Once()

		result, err := NewMenuService(menu, zap.NewNop()).UpdateMenuItem(ctx, id.String(), entity.Document{"price": 9.5})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.MatchedCount)
		assert.Equal(t, int64(0), result.ModifiedCount)
	})

	t.Run("Should reject an empty update", func(t *testing.T) {
		menu := new(MockMenuRepository)

		_, err := NewMenuService(menu, zap.NewNop()).UpdateMenuItem(ctx, uuid.NewString(), entity.Document{"_id": "x"})
		assert.Equal(t, utils.KindInvalidInput, utils.AsAppError(err).Kind)
	})
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	carts := new(MockCartRepository)
	carts.On("FindAll", ctx, "").Return([]entity.CartEntry{}, nil).Once()

	entries, err := NewCartService(carts, zap.NewNop()).GetCart(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, entries)
	carts.AssertExpectations(t)
}
