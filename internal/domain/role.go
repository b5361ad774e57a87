package domain

// Role enumerates the fixed set of CRM operator roles. A role is assigned
// at login and is immutable for the lifetime of the session.
type Role string

const (
	RoleManager    Role = "manager"
	RoleSuperAgent Role = "super_agent"
	RoleAgent      Role = "agent"
)

// RoleDisplayName returns the human-readable label for a role.
func RoleDisplayName(role Role) string {
	switch role {
	case RoleManager:
		return "Manager"
	case RoleSuperAgent:
		return "Super Agent"
	case RoleAgent:
		return "Agent"
	default:
		return string(role)
	}
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role Role) bool {
	switch role {
	case RoleManager, RoleSuperAgent, RoleAgent:
		return true
	}
	return false
}
