package utils

import (
	"context"
)

type contextKey string

const (
	EmailKey contextKey = "email"
)

// GetEmailFromContext returns the email of the verified token claim.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func SetIdentityContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, EmailKey, claims.Email)
}
