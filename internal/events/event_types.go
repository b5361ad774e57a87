package events

import (
	"time"

	"github.com/spec-kit/estate-crm/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadCreated     EventType = "lead_created"
	EventLeadUpdated     EventType = "lead_updated"
	EventLeadAssigned    EventType = "lead_assigned"
	EventLeadDeleted     EventType = "lead_deleted"
	EventLeadsImported   EventType = "leads_imported"
	EventPropertyDeleted EventType = "property_deleted"
	EventMemberRemoved   EventType = "member_removed"
)

// Actor identifies who triggered an event.
type Actor struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadCreatedPayload payload.
type LeadCreatedPayload struct {
	Name   string            `json:"name"`
	Source string            `json:"source,omitempty"`
	Status domain.LeadStatus `json:"status"`
}

// LeadAssignedPayload payload.
type LeadAssignedPayload struct {
	AssignedTo *string `json:"assigned_to"`
}

// LeadStatusChangedPayload payload.
type LeadStatusChangedPayload struct {
	OldStatus domain.LeadStatus `json:"old_status"`
	NewStatus domain.LeadStatus `json:"new_status"`
}

// LeadsImportedPayload payload.
type LeadsImportedPayload struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// PropertyDeletedPayload records the cascade footprint of a listing removal.
type PropertyDeletedPayload struct {
	UnlinkedLeads int `json:"unlinked_leads"`
}

// MemberRemovedPayload records the cascade footprint of a member removal.
type MemberRemovedPayload struct {
	Name            string `json:"name"`
	UnassignedLeads int    `json:"unassigned_leads"`
}
