package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no provider secret key was supplied.
var ErrNotConfigured = errors.New("payment provider is not configured")

// StripeGateway creates card payment intents through the Stripe API.
type StripeGateway struct {
	api      *client.API
	currency string
	log      *zap.Logger
}

func NewStripeGateway(secretKey, currency string, log *zap.Logger) *StripeGateway {
	g := &StripeGateway{
		currency: currency,
		log:      log.With(zap.String("gateway", "stripe")),
	}
	if secretKey != "" {
		g.api = client.New(secretKey, nil)
	} else {
		g.log.Warn("PAYMENT_SECRET_KEY is empty, payment intents are disabled")
	}
	return g
}

// CreatePaymentIntent returns the client secret of a new intent for amount,
// expressed in the smallest currency unit.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64) (string, error) {
	if g.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("Failed to create payment intent", zap.Error(err), zap.Int64("amount", amount))
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	g.log.Info("Payment intent created", zap.String("intent_id", intent.ID), zap.Int64("amount", amount))
	return intent.ClientSecret, nil
}
