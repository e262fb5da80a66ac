package usecase

import (
	"context"

	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	AdminStats(ctx context.Context) (*response.AdminStatsResponse, error)
	OrderStats(ctx context.Context) ([]response.CategoryStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	log       *zap.Logger
}

func NewStatsService(statsRepo repository.StatsRepository, log *zap.Logger) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		log:       log.With(zap.String("service", "stats")),
	}
}

// AdminStats runs the three approximate counts and the revenue sum
// concurrently. Counts may lag behind recent writes.
func (s *statsService) AdminStats(ctx context.Context) (*response.AdminStatsResponse, error) {
	var stats response.AdminStatsResponse

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		stats.Users, err = s.statsRepo.EstimatedUsers(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.MenuItems, err = s.statsRepo.EstimatedMenuItems(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.Orders, err = s.statsRepo.EstimatedOrders(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		stats.Revenue, err = s.statsRepo.TotalRevenue(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, utils.ErrStore("Failed to compute admin stats", err)
	}

	return &stats, nil
}

func (s *statsService) OrderStats(ctx context.Context) ([]response.CategoryStats, error) {
	sales, err := s.statsRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, utils.ErrStore("Failed to compute order stats", err)
	}

	out := make([]response.CategoryStats, len(sales))
	for i, row := range sales {
		out[i] = response.CategoryStats{
			Category: row.Category,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		}
	}
	return out, nil
}
