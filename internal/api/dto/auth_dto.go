package dto

import (
	"time"

	"github.com/spec-kit/estate-crm/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the identity it encodes.
type LoginResponse struct {
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	Name        string      `json:"name"`
	Role        domain.Role `json:"role"`
	RoleDisplay string      `json:"role_display"`
}
