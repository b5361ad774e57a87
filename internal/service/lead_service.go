package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/authz"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/importer"
	"github.com/spec-kit/estate-crm/internal/store"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// LeadService coordinates lead workflows on top of the entity store.
// Identity is passed explicitly on every call that needs it; the service
// holds no ambient session state.
type LeadService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewLeadService constructs the service.
func NewLeadService(entityStore *store.Store, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{store: entityStore, dispatcher: dispatcher}
}

// LeadFilter captures listing filters applied after visibility scoping.
type LeadFilter struct {
	Statuses []domain.LeadStatus
	Search   string
}

// List returns the leads visible to the actor, optionally narrowed by
// status and a case-insensitive name/phone/email search.
func (s *LeadService) List(actor events.Actor, filter LeadFilter) []domain.Lead {
	leads := authz.VisibleLeads(s.store.Leads(), actor.Role, actor.Name)
	if len(filter.Statuses) == 0 && filter.Search == "" {
		return leads
	}

	out := make([]domain.Lead, 0, len(leads))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, lead := range leads {
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, lead.Status) {
			continue
		}
		if search != "" && !matchesSearch(lead, search) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

// Get returns a single visible lead.
func (s *LeadService) Get(actor events.Actor, id string) (domain.Lead, error) {
	lead, err := s.store.GetLead(id)
	if err != nil {
		return domain.Lead{}, err
	}
	for _, visible := range authz.VisibleLeads([]domain.Lead{lead}, actor.Role, actor.Name) {
		if visible.ID == id {
			return visible, nil
		}
	}
	return domain.Lead{}, util.NewNotFound("lead", map[string]any{"lead_id": id})
}

// Create adds a lead with store defaults applied.
func (s *LeadService) Create(ctx context.Context, actor events.Actor, input store.LeadInput) (domain.Lead, error) {
	lead, err := s.store.AddLead(ctx, input)
	if err != nil {
		return lead, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventLeadCreated,
		EntityID: lead.ID,
		Actor:    actor,
		Payload: events.LeadCreatedPayload{
			Name:   lead.Name,
			Source: lead.Source,
			Status: lead.Status,
		},
	})
	return lead, nil
}

// Update applies a shallow partial update. A status transition rides on
// the update event as a payload so subscribers can track pipeline moves.
func (s *LeadService) Update(ctx context.Context, actor events.Actor, id string, patch store.LeadPatch) (domain.Lead, error) {
	var payload any
	if patch.Status != nil {
		if before, err := s.store.GetLead(id); err == nil && before.Status != *patch.Status {
			payload = events.LeadStatusChangedPayload{
				OldStatus: before.Status,
				NewStatus: *patch.Status,
			}
		}
	}

	lead, err := s.store.UpdateLead(ctx, id, patch)
	if err != nil {
		return lead, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventLeadUpdated,
		EntityID: lead.ID,
		Actor:    actor,
		Payload:  payload,
	})
	return lead, nil
}

// Delete removes a lead. No other entity is affected.
func (s *LeadService) Delete(ctx context.Context, actor events.Actor, id string) error {
	if err := s.store.RemoveLead(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventLeadDeleted,
		EntityID: id,
		Actor:    actor,
	})
	return nil
}

// Assign sets or clears a lead's assignment. A non-nil name must resolve
// to an existing team member; the stored reference is the member's display
// name, not an id.
func (s *LeadService) Assign(ctx context.Context, actor events.Actor, id string, memberName *string) (domain.Lead, error) {
	var assignee *string
	if memberName != nil {
		member, ok := s.store.FindTeamMemberByName(*memberName)
		if !ok {
			return domain.Lead{}, util.NewNotFound("team member", map[string]any{"name": *memberName})
		}
		name := member.Name
		assignee = &name
	}
	lead, err := s.store.UpdateLead(ctx, id, store.LeadPatch{AssignedTo: &assignee})
	if err != nil {
		return lead, err
	}
	s.publish(ctx, events.Event{
		Type:     events.EventLeadAssigned,
		EntityID: lead.ID,
		Actor:    actor,
		Payload:  events.LeadAssignedPayload{AssignedTo: lead.AssignedTo},
	})
	return lead, nil
}

// LinkProperty adds a property to the lead's interest set. The property
// must exist at link time; later property deletion cascades the id out.
func (s *LeadService) LinkProperty(ctx context.Context, leadID, propertyID string) error {
	if _, err := s.store.GetProperty(propertyID); err != nil {
		return util.NewNotFound("property", map[string]any{"property_id": propertyID})
	}
	return s.store.LinkProperty(ctx, leadID, propertyID)
}

// UnlinkProperty removes a property from the lead's interest set.
func (s *LeadService) UnlinkProperty(ctx context.Context, leadID, propertyID string) error {
	return s.store.UnlinkProperty(ctx, leadID, propertyID)
}

// ImportRecords adds the parsed records as new leads, skipping entries
// whose phone or email already exists in the collection.
func (s *LeadService) ImportRecords(ctx context.Context, actor events.Actor, records []importer.LeadRecord) (imported, skipped int, err error) {
	existing := s.store.Leads()
	seenPhones := make(map[string]struct{}, len(existing))
	seenEmails := make(map[string]struct{}, len(existing))
	for _, lead := range existing {
		if lead.Phone != "" {
			seenPhones[lead.Phone] = struct{}{}
		}
		if lead.Email != "" {
			seenEmails[strings.ToLower(lead.Email)] = struct{}{}
		}
	}

	for _, rec := range records {
		if _, dup := seenPhones[rec.Phone]; dup && rec.Phone != "" {
			skipped++
			continue
		}
		if _, dup := seenEmails[strings.ToLower(rec.Email)]; dup && rec.Email != "" {
			skipped++
			continue
		}
		if _, addErr := s.store.AddLead(ctx, store.LeadInput{
			Name:         rec.Name,
			Phone:        rec.Phone,
			Email:        rec.Email,
			City:         rec.City,
			Source:       rec.Source,
			PropertyType: rec.PropertyType,
			Notes:        rec.Notes,
			Budget:       rec.Budget,
		}); addErr != nil {
			return imported, skipped, addErr
		}
		if rec.Phone != "" {
			seenPhones[rec.Phone] = struct{}{}
		}
		if rec.Email != "" {
			seenEmails[strings.ToLower(rec.Email)] = struct{}{}
		}
		imported++
	}

	s.publish(ctx, events.Event{
		Type:  events.EventLeadsImported,
		Actor: actor,
		Payload: events.LeadsImportedPayload{
			Imported: imported,
			Skipped:  skipped,
		},
	})
	return imported, skipped, nil
}

func (s *LeadService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func containsStatus(statuses []domain.LeadStatus, status domain.LeadStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func matchesSearch(lead domain.Lead, search string) bool {
	return strings.Contains(strings.ToLower(lead.Name), search) ||
		strings.Contains(strings.ToLower(lead.Phone), search) ||
		strings.Contains(strings.ToLower(lead.Email), search) ||
		strings.Contains(strings.ToLower(lead.City), search)
}
