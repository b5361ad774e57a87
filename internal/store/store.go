// Package store owns the three entity collections and guarantees their
// referential-integrity rules after every operation. All mutations are
// synchronous read/modify/write steps over in-memory state followed by a
// whole-collection snapshot write through the persistence boundary.
//
// The store performs no permission checks; authorization is a
// presentation-layer concern enforced before calls reach it.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// ErrNotFound is returned when an update or remove targets an id that is
// not in the collection. The original behavior was a silent no-op; the
// surfaced result lets callers distinguish "nothing to do" from a typo.
var ErrNotFound = util.NewNotFound("entity", nil)

// Store holds the lead, property and team-member collections.
//
// Reads hand out copies; callers never see internal slices. A persist
// failure is returned to the caller after the in-memory mutation has been
// applied — storage is then one write behind memory and stays that way
// until the next successful snapshot.
type Store struct {
	mu          sync.RWMutex
	leads       []domain.Lead
	properties  []domain.Property
	teamMembers []domain.TeamMember

	snapshots persistence.Snapshotter
}

// New creates a store backed by the given snapshotter.
func New(snapshots persistence.Snapshotter) *Store {
	return &Store{snapshots: snapshots}
}

// Load restores all three collections from the persistence boundary.
// Missing keys leave the corresponding collection empty.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := loadCollection(ctx, s.snapshots, persistence.KeyLeads, &s.leads); err != nil {
		return err
	}
	if err := loadCollection(ctx, s.snapshots, persistence.KeyProperties, &s.properties); err != nil {
		return err
	}
	return loadCollection(ctx, s.snapshots, persistence.KeyTeamMembers, &s.teamMembers)
}

func loadCollection[T any](ctx context.Context, snapshots persistence.Snapshotter, key string, dst *[]T) error {
	raw, found, err := snapshots.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		*dst = nil
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Leads returns a snapshot copy of the lead collection. Inner slices are
// cloned too; a later mutation must never show through a held snapshot.
func (s *Store) Leads() []domain.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Lead, len(s.leads))
	for i := range s.leads {
		out[i] = copyLead(s.leads[i])
	}
	return out
}

// Properties returns a snapshot copy of the property collection.
func (s *Store) Properties() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Property, len(s.properties))
	for i := range s.properties {
		out[i] = copyProperty(s.properties[i])
	}
	return out
}

// TeamMembers returns a snapshot copy of the team-member collection.
func (s *Store) TeamMembers() []domain.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.TeamMember, len(s.teamMembers))
	copy(out, s.teamMembers)
	return out
}

// persistLeads writes the full lead collection under its key. Callers
// hold the write lock.
func (s *Store) persistLeads(ctx context.Context) error {
	return s.persist(ctx, persistence.KeyLeads, s.leads)
}

func (s *Store) persistProperties(ctx context.Context) error {
	return s.persist(ctx, persistence.KeyProperties, s.properties)
}

func (s *Store) persistTeamMembers(ctx context.Context) error {
	return s.persist(ctx, persistence.KeyTeamMembers, s.teamMembers)
}

// copyLead clones the interest slice so the returned value shares no
// backing array with store state. Empty stays non-nil.
func copyLead(lead domain.Lead) domain.Lead {
	interested := make([]string, len(lead.InterestedProperties))
	copy(interested, lead.InterestedProperties)
	lead.InterestedProperties = interested
	return lead
}

// copyProperty clones the image slice, same contract as copyLead.
func copyProperty(property domain.Property) domain.Property {
	images := make([]string, len(property.Images))
	copy(images, property.Images)
	property.Images = images
	return property
}

func (s *Store) persist(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return util.NewPersistFailure(err)
	}
	if err := s.snapshots.Put(ctx, key, raw); err != nil {
		return util.NewPersistFailure(err)
	}
	return nil
}
