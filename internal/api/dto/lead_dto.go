package dto

import "github.com/spec-kit/estate-crm/internal/domain"

// CreateLeadRequest payload. Status, assignment and the interest set are
// store-injected defaults and not accepted here.
type CreateLeadRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	City         string  `json:"city"`
	Source       string  `json:"source"`
	PropertyType string  `json:"propertyType"`
	Notes        string  `json:"notes"`
	Budget       float64 `json:"budget"`
}

// UpdateLeadRequest is a shallow partial update; absent fields are left
// untouched. Assignment changes go through the assign endpoint instead so
// that null and absent stay distinguishable.
type UpdateLeadRequest struct {
	Name         *string            `json:"name"`
	Phone        *string            `json:"phone"`
	Email        *string            `json:"email"`
	City         *string            `json:"city"`
	Status       *domain.LeadStatus `json:"status"`
	Source       *string            `json:"source"`
	PropertyType *string            `json:"propertyType"`
	Notes        *string            `json:"notes"`
	Budget       *float64           `json:"budget"`
}

// AssignLeadRequest payload. A null assignedTo clears the assignment.
type AssignLeadRequest struct {
	AssignedTo *string `json:"assignedTo"`
}

// ImportSummary reports the outcome of a CSV import.
type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
