package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/authz"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// Require gates a route behind a permission requirement. An empty
// requirement passes everyone through, mirroring the gate's fail-open
// default for unrestricted elements.
func Require(req authz.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !authz.Evaluate(req, principal.Role) {
			return util.NewForbidden("insufficient permissions")
		}
		return c.Next()
	}
}

// RequireWithFallback gates a route but invokes fallback instead of
// failing when the requirement is not met. The guarded handler stays
// unreachable on deny.
func RequireWithFallback(req authz.Requirement, fallback fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return util.NewUnauthorized("authentication required")
		}
		if !authz.Evaluate(req, principal.Role) {
			return fallback(c)
		}
		return c.Next()
	}
}

// RequirePermission is shorthand for a single-permission requirement.
func RequirePermission(permission authz.Permission) fiber.Handler {
	return Require(authz.Requirement{Permission: permission})
}
