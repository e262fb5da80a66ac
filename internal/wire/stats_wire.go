package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStats(
	r chi.Router,
	statsHandler *adaptor.StatsHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.VerifyToken(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/admin-stats", statsHandler.AdminStats)
		r.Get("/order-stats", statsHandler.OrderStats)
	})
}
