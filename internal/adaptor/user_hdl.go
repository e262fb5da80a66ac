package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		respondError(h.log, w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r, &request.CreateUserRequest{})
	if err != nil {
		respondError(h.log, w, err, "create user")
		return
	}

	result, err := h.service.CreateUser(r.Context(), doc)
	if err != nil {
		respondError(h.log, w, err, "create user")
		return
	}

	utils.ResponseSuccess(w, result)
}

// MakeAdmin handles PATCH /user/admin/{id} (admin only)
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.MakeAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.log, w, err, "make admin")
		return
	}

	utils.ResponseSuccess(w, result)
}

// DeleteUser handles DELETE /users/{id} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(h.log, w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, result)
}

// IsAdmin handles GET /users/isadmin/{email} (token holder only)
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	requester, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	status, err := h.service.CheckAdmin(r.Context(), requester, chi.URLParam(r, "email"))
	if err != nil {
		appErr := utils.AsAppError(err)
		if appErr.Kind == utils.KindForbidden {
			// clients read the flag even on refusal
			utils.ResponseJSON(w, appErr.Status, response.AdminStatusResponse{Admin: false, Message: appErr.Message})
			return
		}
		respondError(h.log, w, err, "check admin")
		return
	}

	utils.ResponseSuccess(w, status)
}
