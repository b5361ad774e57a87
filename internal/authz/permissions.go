// Package authz defines the role-based permission model and the
// presentation-layer access gate built on top of it.
//
// The role → permission table is fixed at build time and closed-world:
// any permission not explicitly listed for a role evaluates to false.
// The gate is a display guard, not a security boundary; the entity store
// performs no checks of its own.
package authz

import "github.com/spec-kit/estate-crm/internal/domain"

// Permission is an atomic capability token gating an action or a
// data-visibility rule. Permissions carry no data.
type Permission string

const (
	// Dashboard
	PermViewDashboard Permission = "view_dashboard"
	PermViewFullStats Permission = "view_full_stats"

	// Leads
	PermViewAllLeads      Permission = "view_all_leads"
	PermViewAssignedLeads Permission = "view_assigned_leads"
	PermAddLead           Permission = "add_lead"
	PermEditLead          Permission = "edit_lead"
	PermDeleteLead        Permission = "delete_lead"
	PermAssignLead        Permission = "assign_lead"
	PermImportLeads       Permission = "import_leads"

	// Properties
	PermViewProperties Permission = "view_properties"
	PermAddProperty    Permission = "add_property"
	PermEditProperty   Permission = "edit_property"
	PermDeleteProperty Permission = "delete_property"

	// Advanced features
	PermViewAnalytics    Permission = "view_analytics"
	PermManageAutomation Permission = "manage_automation"
	PermManageFollowUp   Permission = "manage_follow_up"

	// User management
	PermManageUsers Permission = "manage_users"
	PermViewTeam    Permission = "view_team"
)

// RolePermissions maps each role to its permission set. The sets are
// partially ordered, not nested: a manager holds delete rights a super
// agent lacks, while an agent sees only assigned leads.
var RolePermissions = map[domain.Role][]Permission{
	domain.RoleManager: {
		PermViewDashboard,
		PermViewFullStats,
		PermViewAllLeads,
		PermAddLead,
		PermEditLead,
		PermDeleteLead,
		PermAssignLead,
		PermImportLeads,
		PermViewProperties,
		PermAddProperty,
		PermEditProperty,
		PermDeleteProperty,
		PermViewAnalytics,
		PermManageAutomation,
		PermManageFollowUp,
		PermManageUsers,
		PermViewTeam,
	},
	domain.RoleSuperAgent: {
		PermViewDashboard,
		PermViewFullStats,
		PermViewAllLeads,
		PermAddLead,
		PermEditLead,
		PermAssignLead,
		PermImportLeads,
		PermViewProperties,
		PermViewAnalytics,
		PermViewTeam,
	},
	domain.RoleAgent: {
		PermViewDashboard,
		PermViewAssignedLeads,
		PermEditLead,
		PermViewProperties,
	},
}

// HasPermission reports whether the role's permission set contains the
// permission. It is total: unknown roles and permissions return false,
// never an error, since callers render UI off the result.
func HasPermission(role domain.Role, permission Permission) bool {
	if role == "" || permission == "" {
		return false
	}
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one of the permissions is held.
func HasAnyPermission(role domain.Role, permissions []Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every permission is held. An empty
// slice is vacuously true.
func HasAllPermissions(role domain.Role, permissions []Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}
