package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/api/dto"
	"github.com/spec-kit/estate-crm/internal/auth"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// AuthHandler serves the mock-credential login.
type AuthHandler struct {
	credentials *auth.CredentialStore
	tokens      *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(credentials *auth.CredentialStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{credentials: credentials, tokens: tokens}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return util.NewValidationError("email and password required", nil)
	}

	cred, err := h.credentials.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}
	token, expiresAt, err := h.tokens.GenerateToken(cred.Email, cred.Name, cred.Role)
	if err != nil {
		return util.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		Name:        cred.Name,
		Role:        cred.Role,
		RoleDisplay: domain.RoleDisplayName(cred.Role),
	}})
}
