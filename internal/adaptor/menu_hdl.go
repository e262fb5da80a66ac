package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// GetMenu handles GET /menu?category=
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetMenu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondError(h.log, w, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, items)
}

// GetMenuItem handles GET /menu/{id}
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.log, w, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, item)
}

// CreateMenuItem handles POST /menu (admin only)
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r, &request.CreateMenuItemRequest{})
	if err != nil {
		respondError(h.log, w, err, "create menu item")
		return
	}

	result, err := h.service.CreateMenuItem(r.Context(), doc)
	if err != nil {
		respondError(h.log, w, err, "create menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}

// UpdateMenuItem handles PATCH /menu/{id} (admin only)
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r, &request.UpdateMenuItemRequest{})
	if err != nil {
		respondError(h.log, w, err, "update menu item")
		return
	}

	result, err := h.service.UpdateMenuItem(r.Context(), chi.URLParam(r, "id"), doc)
	if err != nil {
		respondError(h.log, w, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}

// DeleteMenuItem handles DELETE /menu/{id} (admin only)
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.log, w, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, result)
}
