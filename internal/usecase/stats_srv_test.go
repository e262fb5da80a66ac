package usecase

import (
	"context"
	"errors"
	"testing"

	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatsService_AdminStats(t *testing.T) {
	t.Run("Should report zero revenue when nothing was paid", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("EstimatedUsers", mock.Anything).Return(int64(3), nil).Once()
		stats.On("EstimatedMenuItems", mock.Anything).Return(int64(12), nil).Once()
		stats.On("EstimatedOrders", mock.Anything).Return(int64(0), nil).Once()
		stats.On("TotalRevenue", mock.Anything).Return(float64(0), nil).Once()

		result, err := NewStatsService(stats, zap.NewNop()).AdminStats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &response.AdminStatsResponse{Users: 3, MenuItems: 12, Orders: 0, Revenue: 0}, result)
		stats.AssertExpectations(t)
	})

	t.Run("Should fail when any aggregate fails", func(t *testing.T) {
		stats := new(MockStatsRepository)
		stats.On("EstimatedUsers", mock.Anything).Return(int64(3), nil).Maybe()
		stats.On("EstimatedMenuItems", mock.Anything).Return(int64(12), nil).Maybe()
		stats.On("EstimatedOrders", mock.Anything).Return(int64(1), nil).Maybe()
		stats.On("TotalRevenue", mock.Anything).Return(float64(0), errors.New("relation does not exist")).Once()

		result, err := NewStatsService(stats, zap.NewNop()).AdminStats(context.Background())
		assert.Nil(t, result)
		assert.Equal(t, utils.KindUpstream, utils.AsAppError(err).Kind)
	})
}

func TestStatsService_OrderStats(t *testing.T) {
	stats := new(MockStatsRepository)
	stats.On("SalesByCategory", mock.Anything).Return([]repository.CategorySales{
		{Category: "dessert", Quantity: 2, Revenue: 15},
		{Category: "salad", Quantity: 1, Revenue: 9.5},
	}, nil).Once()

	result, err := NewStatsService(stats, zap.NewNop()).OrderStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []response.CategoryStats{
		{Category: "dessert", Quantity: 2, Revenue: 15},
		{Category: "salad", Quantity: 1, Revenue: 9.5},
	}, result)
}
