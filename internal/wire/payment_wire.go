package wire

import (
	"bistro-boss/internal/adaptor"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	r.Post("/payments", paymentHandler.RecordPayment)

	r.With(middleware.VerifyToken(tokens, log)).Get("/payments/{email}", paymentHandler.GetPayments)
}
