package wire

import (
	"net/http"

	"bistro-boss/internal/adaptor"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
	Tokens *utils.TokenManager
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, ext usecase.External, logger *zap.Logger) *App {
	tokens := utils.NewTokenManager(config.JWT.Secret, config.JWT.Expiry)

	service := usecase.NewService(repo, tokens, ext, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
		Tokens: tokens,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseText(w, http.StatusOK, "Bistro Boss Server is On Serving")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := repo.Ping(r.Context()); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseText(w, http.StatusServiceUnavailable, "UNAVAILABLE")
			return
		}
		utils.ResponseText(w, http.StatusOK, "OK")
	})

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, repo, tokens, logger)
	wireMenu(r, handler.Menu, repo, tokens, logger)
	wireReview(r, handler.Review)
	wireCart(r, handler.Cart)
	wirePayment(r, handler.Payment, tokens, logger)
	wireStats(r, handler.Stats, repo, tokens, logger)

	return r
}
