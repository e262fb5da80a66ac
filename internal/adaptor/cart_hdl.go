package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /carts?email=
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.GetCart(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		respondError(h.log, w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, entries)
}

// AddToCart handles POST /carts
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r, &request.AddToCartRequest{})
	if err != nil {
		respondError(h.log, w, err, "add to cart")
		return
	}

	result, err := h.service.AddToCart(r.Context(), doc)
	if err != nil {
		respondError(h.log, w, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, result)
}

// RemoveFromCart handles DELETE /carts/{id}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.log, w, err, "remove from cart")
		return
	}

	utils.ResponseSuccess(w, result)
}
