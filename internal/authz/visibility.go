package authz

import "github.com/spec-kit/estate-crm/internal/domain"

// VisibleLeads computes the slice of leads the given identity may see.
//
// Holders of view_all_leads see everything; holders of view_assigned_leads
// see only leads whose AssignedTo matches identityName exactly; everyone
// else sees nothing. Unlike the gate, this filter fails closed — observed
// source behavior that is preserved as-is.
func VisibleLeads(leads []domain.Lead, role domain.Role, identityName string) []domain.Lead {
	if HasPermission(role, PermViewAllLeads) {
		out := make([]domain.Lead, len(leads))
		copy(out, leads)
		return out
	}
	out := []domain.Lead{}
	if !HasPermission(role, PermViewAssignedLeads) {
		return out
	}
	for _, lead := range leads {
		if lead.AssignedTo != nil && *lead.AssignedTo == identityName {
			out = append(out, lead)
		}
	}
	return out
}
