package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/pkg/util"
)

const principalKey = "auth_principal"

// Principal carries the authenticated identity for the request. The
// display name doubles as the key for the assigned-lead visibility rule.
type Principal struct {
	Email string
	Name  string
	Role  domain.Role
}

// Middleware validates bearer tokens and loads principals into locals.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return util.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return util.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return util.NewUnauthorized("invalid token")
	}
	if !domain.ValidRole(claims.Role) {
		return util.NewUnauthorized("unknown role")
	}

	c.Locals(principalKey, &Principal{
		Email: claims.Subject,
		Name:  claims.Name,
		Role:  claims.Role,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
