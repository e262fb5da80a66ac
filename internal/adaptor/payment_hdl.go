package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentIntentRequest
	if _, err := decodeDocument(r, &req); err != nil {
		respondError(h.log, w, err, "create payment intent")
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		respondError(h.log, w, err, "create payment intent")
		return
	}

	utils.ResponseSuccess(w, intent)
}

// RecordPayment handles POST /payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	doc, err := decodeDocument(r, &req)
	if err != nil {
		respondError(h.log, w, err, "record payment")
		return
	}

	result, err := h.service.RecordPayment(r.Context(), doc, req.CartIDs)
	if err != nil {
		respondError(h.log, w, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetPayments handles GET /payments/{email} (token holder only)
func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	requester, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	payments, err := h.service.GetPayments(r.Context(), requester, chi.URLParam(r, "email"))
	if err != nil {
		respondError(h.log, w, err, "get payments")
		return
	}

	utils.ResponseSuccess(w, payments)
}
