package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/store"
)

// PropertyService coordinates listing workflows.
type PropertyService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewPropertyService constructs the service.
func NewPropertyService(entityStore *store.Store, dispatcher events.Dispatcher) *PropertyService {
	return &PropertyService{store: entityStore, dispatcher: dispatcher}
}

// List returns all listings. Property visibility is not role-scoped; the
// view_properties gate in front of the route is the whole rule.
func (s *PropertyService) List() []domain.Property {
	return s.store.Properties()
}

// Get returns a single listing.
func (s *PropertyService) Get(id string) (domain.Property, error) {
	return s.store.GetProperty(id)
}

// Create adds a listing with store defaults applied.
func (s *PropertyService) Create(ctx context.Context, input store.PropertyInput) (domain.Property, error) {
	return s.store.AddProperty(ctx, input)
}

// Update applies a shallow partial update.
func (s *PropertyService) Update(ctx context.Context, id string, patch store.PropertyPatch) (domain.Property, error) {
	return s.store.UpdateProperty(ctx, id, patch)
}

// Delete removes the listing; the store cascades its id out of every
// lead's interest set.
func (s *PropertyService) Delete(ctx context.Context, actor events.Actor, id string) error {
	unlinked := 0
	for _, lead := range s.store.Leads() {
		if lead.InterestedIn(id) {
			unlinked++
		}
	}
	if err := s.store.RemoveProperty(ctx, id); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPropertyDeleted,
			EntityID:  id,
			Actor:     actor,
			Timestamp: time.Now(),
			Payload:   events.PropertyDeletedPayload{UnlinkedLeads: unlinked},
		})
	}
	return nil
}
