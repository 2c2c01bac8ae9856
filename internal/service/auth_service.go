package service

import (
	"context"
	"crypto/subtle"

	"github.com/spec-kit/team-service/internal/auth"
	"github.com/spec-kit/team-service/internal/config"
	"github.com/spec-kit/team-service/internal/domain"
	apperrors "github.com/spec-kit/team-service/pkg/util/errorutil"
)

// AuthService exchanges client credentials for bearer tokens.
type AuthService struct {
	tokens           *auth.TokenManager
	clientID         string
	clientSecretHash string
}

// NewAuthService constructs the service from auth configuration.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		tokens:           auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		clientID:         cfg.ClientID,
		clientSecretHash: cfg.ClientSecretHash,
	}
}

// TokenManager exposes the manager used to sign and verify tokens.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// IssueToken verifies the client credentials and signs an access token.
func (s *AuthService) IssueToken(_ context.Context, creds domain.ClientCredentials) (*domain.Token, error) {
	if s.clientID == "" || s.clientSecretHash == "" {
		return nil, apperrors.NewForbidden("token issuance disabled")
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, apperrors.NewValidationError("client_id and client_secret required", nil)
	}

	idMatches := subtle.ConstantTimeCompare([]byte(creds.ClientID), []byte(s.clientID)) == 1
	secretErr := auth.CompareSecret(s.clientSecretHash, creds.ClientSecret)
	if !idMatches || secretErr != nil {
		return nil, apperrors.NewUnauthorized("invalid client credentials")
	}

	value, expiresAt, err := s.tokens.GenerateToken(creds.ClientID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &domain.Token{Value: value, SubjectID: creds.ClientID, ExpiresAt: expiresAt}, nil
}
