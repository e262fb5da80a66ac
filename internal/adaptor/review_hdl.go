package adaptor

import (
	"net/http"

	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.GetReviews(r.Context())
	if err != nil {
		respondError(h.log, w, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}
