package authz

import (
	"testing"

	"github.com/spec-kit/estate-crm/internal/domain"
)

func TestRolePermissionsCoverAllRoles(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleManager, domain.RoleSuperAgent, domain.RoleAgent} {
		perms, ok := RolePermissions[role]
		if !ok {
			t.Fatalf("role %q missing from permission table", role)
		}
		if len(perms) == 0 {
			t.Fatalf("role %q has no permissions", role)
		}
	}
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		permission Permission
		want       bool
	}{
		{"manager can delete leads", domain.RoleManager, PermDeleteLead, true},
		{"manager can manage users", domain.RoleManager, PermManageUsers, true},
		{"manager has no assigned-only view", domain.RoleManager, PermViewAssignedLeads, false},
		{"super agent sees all leads", domain.RoleSuperAgent, PermViewAllLeads, true},
		{"super agent cannot delete leads", domain.RoleSuperAgent, PermDeleteLead, false},
		{"super agent cannot manage users", domain.RoleSuperAgent, PermManageUsers, false},
		{"agent sees assigned leads only", domain.RoleAgent, PermViewAssignedLeads, true},
		{"agent cannot see all leads", domain.RoleAgent, PermViewAllLeads, false},
		{"agent cannot delete leads", domain.RoleAgent, PermDeleteLead, false},
		{"unknown role denied", domain.Role("intern"), PermViewDashboard, false},
		{"unknown permission denied", domain.RoleManager, Permission("launch_rockets"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPermission(tc.role, tc.permission); got != tc.want {
				t.Fatalf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.permission, got, tc.want)
			}
		})
	}
}

func TestHasAnyPermission(t *testing.T) {
	tests := []struct {
		name  string
		role  domain.Role
		perms []Permission
		want  bool
	}{
		{"one of two held", domain.RoleAgent, []Permission{PermViewAllLeads, PermViewAssignedLeads}, true},
		{"none held", domain.RoleAgent, []Permission{PermDeleteLead, PermManageUsers}, false},
		{"empty list denies", domain.RoleManager, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAnyPermission(tc.role, tc.perms); got != tc.want {
				t.Fatalf("HasAnyPermission(%q, %v) = %v, want %v", tc.role, tc.perms, got, tc.want)
			}
		})
	}
}

func TestHasAllPermissions(t *testing.T) {
	tests := []struct {
		name  string
		role  domain.Role
		perms []Permission
		want  bool
	}{
		{"all held", domain.RoleManager, []Permission{PermAddLead, PermEditLead, PermDeleteLead}, true},
		{"one missing", domain.RoleSuperAgent, []Permission{PermAddLead, PermDeleteLead}, false},
		{"empty list is vacuously true", domain.RoleAgent, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAllPermissions(tc.role, tc.perms); got != tc.want {
				t.Fatalf("HasAllPermissions(%q, %v) = %v, want %v", tc.role, tc.perms, got, tc.want)
			}
		})
	}
}
