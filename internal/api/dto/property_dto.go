package dto

import "github.com/spec-kit/estate-crm/internal/domain"

// CreatePropertyRequest payload. Status defaults to available.
type CreatePropertyRequest struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	City        string   `json:"city"`
	Price       float64  `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
}

// UpdatePropertyRequest is a shallow partial update.
type UpdatePropertyRequest struct {
	Title       *string                `json:"title"`
	Location    *string                `json:"location"`
	City        *string                `json:"city"`
	Price       *float64               `json:"price"`
	Bedrooms    *int                   `json:"bedrooms"`
	Bathrooms   *int                   `json:"bathrooms"`
	Area        *float64               `json:"area"`
	Type        *string                `json:"type"`
	Status      *domain.PropertyStatus `json:"status"`
	Images      *[]string              `json:"images"`
	Description *string                `json:"description"`
}
