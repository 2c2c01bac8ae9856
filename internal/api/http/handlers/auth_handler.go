package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-service/internal/api/dto"
	"github.com/spec-kit/team-service/internal/domain"
	"github.com/spec-kit/team-service/internal/service"
	apperrors "github.com/spec-kit/team-service/pkg/util/errorutil"
)

// AuthHandler exposes the token endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Token handles POST /auth/token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, err := h.auth.IssueToken(c.UserContext(), domain.ClientCredentials{
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{
		Token:     token.Value,
		TokenType: "bearer",
		ExpiresAt: token.ExpiresAt,
	})
}
