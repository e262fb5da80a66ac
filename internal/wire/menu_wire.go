package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", menuHandler.GetMenu)
		r.Get("/{id}", menuHandler.GetMenuItem)

		r.Group(func(r chi.Router) {
			r.Use(middleware.VerifyToken(tokens, log))
			r.Use(middleware.Admin(repo.User, log))

			r.Post("/", menuHandler.CreateMenuItem)
			r.Patch("/{id}", menuHandler.UpdateMenuItem)
			r.Delete("/{id}", menuHandler.DeleteMenuItem)
		})
	})
}
