package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/domain"
)

// PropertyInput carries caller-supplied fields for listing creation.
type PropertyInput struct {
	Title       string
	Location    string
	City        string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	Area        float64
	Type        string
	Images      []string
	Description string
}

// PropertyPatch describes a shallow partial update for a listing.
type PropertyPatch struct {
	Title       *string
	Location    *string
	City        *string
	Price       *float64
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Type        *string
	Status      *domain.PropertyStatus
	Images      *[]string
	Description *string
}

// AddProperty appends a new listing with defaults applied and persists.
func (s *Store) AddProperty(ctx context.Context, input PropertyInput) (domain.Property, error) {
	images := make([]string, len(input.Images))
	copy(images, input.Images)
	property := domain.Property{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Location:    input.Location,
		City:        input.City,
		Price:       input.Price,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Area:        input.Area,
		Type:        input.Type,
		Status:      domain.PropertyStatusAvailable,
		Images:      images,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties = append(s.properties, property)
	return copyProperty(property), s.persistProperties(ctx)
}

// UpdateProperty merges the patch onto the listing with the given id.
func (s *Store) UpdateProperty(ctx context.Context, id string, patch PropertyPatch) (domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.propertyIndex(id)
	if idx < 0 {
		return domain.Property{}, ErrNotFound
	}
	property := &s.properties[idx]
	if patch.Title != nil {
		property.Title = *patch.Title
	}
	if patch.Location != nil {
		property.Location = *patch.Location
	}
	if patch.City != nil {
		property.City = *patch.City
	}
	if patch.Price != nil {
		property.Price = *patch.Price
	}
	if patch.Bedrooms != nil {
		property.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		property.Bathrooms = *patch.Bathrooms
	}
	if patch.Area != nil {
		property.Area = *patch.Area
	}
	if patch.Type != nil {
		property.Type = *patch.Type
	}
	if patch.Status != nil {
		property.Status = *patch.Status
	}
	if patch.Images != nil {
		property.Images = *patch.Images
	}
	if patch.Description != nil {
		property.Description = *patch.Description
	}
	return copyProperty(*property), s.persistProperties(ctx)
}

// RemoveProperty deletes the listing and cascades its id out of every
// lead's interest set, keeping the relationship free of dangling ids.
func (s *Store) RemoveProperty(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.propertyIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.properties = append(s.properties[:idx], s.properties[idx+1:]...)

	leadsTouched := false
	for i := range s.leads {
		lead := &s.leads[i]
		if !lead.InterestedIn(id) {
			continue
		}
		lead.InterestedProperties = withoutID(lead.InterestedProperties, id)
		leadsTouched = true
	}

	err := s.persistProperties(ctx)
	if leadsTouched {
		if leadsErr := s.persistLeads(ctx); leadsErr != nil {
			err = errors.Join(err, leadsErr)
		}
	}
	return err
}

// GetProperty returns a copy of the listing with the given id.
func (s *Store) GetProperty(id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.propertyIndex(id)
	if idx < 0 {
		return domain.Property{}, ErrNotFound
	}
	return copyProperty(s.properties[idx]), nil
}

func (s *Store) propertyIndex(id string) int {
	for i := range s.properties {
		if s.properties[i].ID == id {
			return i
		}
	}
	return -1
}
