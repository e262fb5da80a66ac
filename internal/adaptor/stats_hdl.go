package adaptor

import (
	"net/http"

	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service usecase.StatsService
	log     *zap.Logger
}

func NewStatsHandler(service usecase.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		log:     log.With(zap.String("handler", "stats")),
	}
}

// AdminStats handles GET /admin-stats (admin only)
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AdminStats(r.Context())
	if err != nil {
		respondError(h.log, w, err, "get admin stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

// OrderStats handles GET /order-stats (admin only)
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.OrderStats(r.Context())
	if err != nil {
		respondError(h.log, w, err, "get order stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
