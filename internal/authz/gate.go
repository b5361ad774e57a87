package authz

import "github.com/spec-kit/estate-crm/internal/domain"

// Requirement declares what a guarded element needs. Exactly one of
// Permission or Permissions is normally set; when both are empty the
// requirement is unrestricted and evaluates to allow. That fail-open
// default is deliberate: the gate suppresses UI affordances, it does not
// enforce security, and unrestricted elements must render.
type Requirement struct {
	Permission  Permission
	Permissions []Permission
	RequireAll  bool
}

// Empty reports whether the requirement declares nothing.
func (r Requirement) Empty() bool {
	return r.Permission == "" && len(r.Permissions) == 0
}

// Evaluate decides allow/deny for the requirement under the given role.
func Evaluate(req Requirement, role domain.Role) bool {
	switch {
	case req.Permission != "":
		return HasPermission(role, req.Permission)
	case len(req.Permissions) > 0:
		if req.RequireAll {
			return HasAllPermissions(role, req.Permissions)
		}
		return HasAnyPermission(role, req.Permissions)
	default:
		return true
	}
}
