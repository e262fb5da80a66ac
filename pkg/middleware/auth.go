package middleware

import (
	"context"
	"net/http"
	"strings"

	"bistro-boss/internal/data/repository"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate resolves the request's bearer token into verified claims.
func Authenticate(r *http.Request, tokens *utils.TokenManager) (*utils.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, utils.ErrUnauthenticated("Missing authorization token", nil)
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, utils.ErrUnauthenticated("Invalid token format. Use: Bearer <token>", nil)
	}

	claims, err := tokens.Validate(parts[1])
	if err != nil {
		return nil, utils.ErrUnauthenticated("Invalid or expired token", err)
	}

	return claims, nil
}

// RequireAdmin looks the user up on every call; an unknown email is
// treated the same as a non-admin.
func RequireAdmin(ctx context.Context, userRepo repository.UserRepository, email string) error {
	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrStore("Internal server error", err)
	}
	if user == nil || !user.IsAdmin() {
		return utils.ErrForbidden("Forbidden access")
	}
	return nil
}

// VerifyToken rejects requests without a valid bearer token and stores the
// token's email in the request context.
func VerifyToken(tokens *utils.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authenticate(r, tokens)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseError(w, err)
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin must run after VerifyToken.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := utils.GetEmailFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if err := RequireAdmin(r.Context(), userRepo, email); err != nil {
				appErr := utils.AsAppError(err)
				if appErr.Kind == utils.KindForbidden {
					logger.Warn("Admin check: non-admin access attempt",
						zap.String("email", email),
						zap.String("path", r.URL.Path))
				} else {
					logger.Error("Admin check: failed to get user",
						zap.Error(err), zap.String("email", email))
				}
				utils.ResponseError(w, appErr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
