package usecase

import (
	"context"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	tokens *utils.TokenManager
	log    *zap.Logger
}

func NewAuthService(tokens *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// IssueToken signs a one-hour claim for the email. Identity is asserted by
// the client's sign-in provider; no password is checked here.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	token, expiresAt, err := s.tokens.Generate(req.Email)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("email", req.Email))
		return nil, utils.ErrInternal("Failed to issue token", err)
	}

	s.log.Debug("Token issued", zap.String("email", req.Email), zap.Time("expires_at", expiresAt))

	return &response.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
