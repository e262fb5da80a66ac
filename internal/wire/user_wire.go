package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ====================
	r.Post("/users", userHandler.CreateUser)

	// ==================== TOKEN HOLDER ====================
	r.With(middleware.VerifyToken(tokens, log)).Get("/users/isadmin/{email}", userHandler.IsAdmin)

	// ==================== ADMIN ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.VerifyToken(tokens, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/users", userHandler.GetAllUsers)
		r.Patch("/user/admin/{id}", userHandler.MakeAdmin)
		r.Patch("/users/admin/{id}", userHandler.MakeAdmin)
		r.Delete("/users/{id}", userHandler.DeleteUser)
	})
}
