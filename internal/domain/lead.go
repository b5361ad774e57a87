package domain

import "time"

// LeadStatus enumerates pipeline stages for leads.
type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusClosedWon   LeadStatus = "closed-won"
	LeadStatusClosedLost  LeadStatus = "closed-lost"
)

// Lead is a sales prospect moving through the pipeline.
//
// AssignedTo is a weak reference holding a TeamMember display name rather
// than an id; deleting a member nulls it by name match. Two members sharing
// a name would break the lookup silently. InterestedProperties holds
// Property ids with set semantics; removing a property cascades the id out
// of every lead.
type Lead struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Phone                string     `json:"phone"`
	Email                string     `json:"email,omitempty"`
	City                 string     `json:"city,omitempty"`
	Status               LeadStatus `json:"status"`
	Source               string     `json:"source,omitempty"`
	PropertyType         string     `json:"propertyType,omitempty"`
	AssignedTo           *string    `json:"assignedTo"`
	InterestedProperties []string   `json:"interestedProperties"`
	Notes                string     `json:"notes,omitempty"`
	Budget               float64    `json:"budget,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// InterestedIn reports whether propertyID is in the lead's interest set.
func (l *Lead) InterestedIn(propertyID string) bool {
	for _, id := range l.InterestedProperties {
		if id == propertyID {
			return true
		}
	}
	return false
}
