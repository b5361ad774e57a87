package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/domain"
)

// LeadInput carries caller-supplied fields for lead creation. Status,
// assignment, interest set and timestamps are store-injected defaults and
// deliberately absent.
type LeadInput struct {
	Name         string
	Phone        string
	Email        string
	City         string
	Source       string
	PropertyType string
	Notes        string
	Budget       float64
}

// LeadPatch describes a shallow partial update. Nil fields are left
// untouched. AssignedTo is tri-state: nil leaves the assignment alone,
// a non-nil pointer to nil clears it, a pointer to a name sets it.
type LeadPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	City         *string
	Status       *domain.LeadStatus
	Source       *string
	PropertyType *string
	Notes        *string
	Budget       *float64
	AssignedTo   **string
}

// AddLead appends a new lead with entity defaults applied and persists the
// collection. The created lead is returned even when the snapshot write
// fails; the error then reports the divergence.
func (s *Store) AddLead(ctx context.Context, input LeadInput) (domain.Lead, error) {
	lead := domain.Lead{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Phone:                input.Phone,
		Email:                input.Email,
		City:                 input.City,
		Status:               domain.LeadStatusNew,
		Source:               input.Source,
		PropertyType:         input.PropertyType,
		AssignedTo:           nil,
		InterestedProperties: []string{},
		Notes:                input.Notes,
		Budget:               input.Budget,
		CreatedAt:            time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, lead)
	return lead, s.persistLeads(ctx)
}

// UpdateLead merges the patch onto the lead with the given id.
func (s *Store) UpdateLead(ctx context.Context, id string, patch LeadPatch) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.leadIndex(id)
	if idx < 0 {
		return domain.Lead{}, ErrNotFound
	}
	lead := &s.leads[idx]
	if patch.Name != nil {
		lead.Name = *patch.Name
	}
	if patch.Phone != nil {
		lead.Phone = *patch.Phone
	}
	if patch.Email != nil {
		lead.Email = *patch.Email
	}
	if patch.City != nil {
		lead.City = *patch.City
	}
	if patch.Status != nil {
		lead.Status = *patch.Status
	}
	if patch.Source != nil {
		lead.Source = *patch.Source
	}
	if patch.PropertyType != nil {
		lead.PropertyType = *patch.PropertyType
	}
	if patch.Notes != nil {
		lead.Notes = *patch.Notes
	}
	if patch.Budget != nil {
		lead.Budget = *patch.Budget
	}
	if patch.AssignedTo != nil {
		lead.AssignedTo = *patch.AssignedTo
	}
	return copyLead(*lead), s.persistLeads(ctx)
}

// RemoveLead deletes the lead. No other entity is affected.
func (s *Store) RemoveLead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.leadIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.leads = append(s.leads[:idx], s.leads[idx+1:]...)
	return s.persistLeads(ctx)
}

// GetLead returns a copy of the lead with the given id.
func (s *Store) GetLead(id string) (domain.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.leadIndex(id)
	if idx < 0 {
		return domain.Lead{}, ErrNotFound
	}
	return copyLead(s.leads[idx]), nil
}

// LinkProperty adds propertyID to the lead's interest set. Idempotent:
// linking an already linked property changes nothing.
func (s *Store) LinkProperty(ctx context.Context, leadID, propertyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.leadIndex(leadID)
	if idx < 0 {
		return ErrNotFound
	}
	lead := &s.leads[idx]
	if lead.InterestedIn(propertyID) {
		return nil
	}
	lead.InterestedProperties = append(lead.InterestedProperties, propertyID)
	return s.persistLeads(ctx)
}

// UnlinkProperty removes propertyID from the lead's interest set. Idempotent.
func (s *Store) UnlinkProperty(ctx context.Context, leadID, propertyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.leadIndex(leadID)
	if idx < 0 {
		return ErrNotFound
	}
	lead := &s.leads[idx]
	if !lead.InterestedIn(propertyID) {
		return nil
	}
	lead.InterestedProperties = withoutID(lead.InterestedProperties, propertyID)
	return s.persistLeads(ctx)
}

// withoutID compacts ids into a fresh slice, never the input's backing
// array: snapshots handed out earlier may still reference it.
func withoutID(ids []string, drop string) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			kept = append(kept, id)
		}
	}
	return kept
}

// leadIndex returns the position of id or -1. Callers hold the lock.
func (s *Store) leadIndex(id string) int {
	for i := range s.leads {
		if s.leads[i].ID == id {
			return i
		}
	}
	return -1
}
