package domain

import "time"

// PropertyStatus enumerates listing availability states.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusSold      PropertyStatus = "sold"
)

// Property is a real-estate listing record.
type Property struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	City        string         `json:"city,omitempty"`
	Price       float64        `json:"price"`
	Bedrooms    int            `json:"bedrooms,omitempty"`
	Bathrooms   int            `json:"bathrooms,omitempty"`
	Area        float64        `json:"area,omitempty"`
	Type        string         `json:"type"`
	Status      PropertyStatus `json:"status"`
	Images      []string       `json:"images"`
	Description string         `json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}
