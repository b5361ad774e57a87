package dto

import "github.com/spec-kit/estate-crm/internal/domain"

// CreateTeamMemberRequest payload. Status and stats are store defaults.
type CreateTeamMemberRequest struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  domain.Role `json:"role"`
}

// UpdateTeamMemberRequest is a shallow partial update.
type UpdateTeamMemberRequest struct {
	Name   *string              `json:"name"`
	Email  *string              `json:"email"`
	Phone  *string              `json:"phone"`
	Role   *domain.Role         `json:"role"`
	Status *domain.MemberStatus `json:"status"`
}
