package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// maxBodyBytes caps request documents.
const maxBodyBytes = 1 << 20

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Menu    *MenuHandler
	Review  *ReviewHandler
	Cart    *CartHandler
	Payment *PaymentHandler
	Stats   *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Menu:    NewMenuHandler(service.Menu, log),
		Review:  NewReviewHandler(service.Review, log),
		Cart:    NewCartHandler(service.Cart, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Stats:   NewStatsHandler(service.Stats, log),
	}
}

// decodeDocument reads the JSON object body once, fills typed (when not
// nil) and validates it. The returned document holds every field the
// client sent.
func decodeDocument(r *http.Request, typed any) (entity.Document, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, utils.ErrInvalidInput("Invalid request body", nil)
	}

	var doc entity.Document
	if err := json.Unmarshal(body, &doc); err != nil || doc == nil {
		return nil, utils.ErrInvalidInput("Invalid request body", nil)
	}

	if typed != nil {
		if err := json.Unmarshal(body, typed); err != nil {
			return nil, utils.ErrInvalidInput("Invalid request body", nil)
		}
		if validationErrors := utils.ValidateStruct(typed); len(validationErrors) > 0 {
			return nil, utils.ErrInvalidInput("Validation failed", validationErrors)
		}
	}

	return doc, nil
}

// respondError logs err at a level matching its kind and writes the
// error body.
func respondError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	appErr := utils.AsAppError(err)

	switch appErr.Kind {
	case utils.KindUpstream, utils.KindInternal:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	case utils.KindInvalidInput:
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("fields", utils.FormatValidationErrors(appErr.Fields)))
	default:
		log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("kind", string(appErr.Kind)))
	}

	utils.ResponseError(w, appErr)
}
