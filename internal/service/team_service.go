package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/store"
)

// TeamService coordinates team-member workflows, including the on-demand
// stats recompute that keeps the stored display counters honest against
// the lead collection.
type TeamService struct {
	store      *store.Store
	dispatcher events.Dispatcher
}

// NewTeamService constructs the service.
func NewTeamService(entityStore *store.Store, dispatcher events.Dispatcher) *TeamService {
	return &TeamService{store: entityStore, dispatcher: dispatcher}
}

// List returns all team members.
func (s *TeamService) List() []domain.TeamMember {
	return s.store.TeamMembers()
}

// Get returns a single member.
func (s *TeamService) Get(id string) (domain.TeamMember, error) {
	return s.store.GetTeamMember(id)
}

// Create adds a member with store defaults applied.
func (s *TeamService) Create(ctx context.Context, input store.TeamMemberInput) (domain.TeamMember, error) {
	return s.store.AddTeamMember(ctx, input)
}

// Update applies a shallow partial update.
func (s *TeamService) Update(ctx context.Context, id string, patch store.TeamMemberPatch) (domain.TeamMember, error) {
	return s.store.UpdateTeamMember(ctx, id, patch)
}

// Delete removes the member; the store cascades AssignedTo to nil on
// every lead assigned to the member's name.
func (s *TeamService) Delete(ctx context.Context, actor events.Actor, id string) error {
	member, err := s.store.GetTeamMember(id)
	if err != nil {
		return err
	}
	unassigned := 0
	for _, lead := range s.store.Leads() {
		if lead.AssignedTo != nil && *lead.AssignedTo == member.Name {
			unassigned++
		}
	}
	if err := s.store.RemoveTeamMember(ctx, id); err != nil {
		return err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMemberRemoved,
			EntityID:  id,
			Actor:     actor,
			Timestamp: time.Now(),
			Payload: events.MemberRemovedPayload{
				Name:            member.Name,
				UnassignedLeads: unassigned,
			},
		})
	}
	return nil
}

// RecomputeStats derives the member's counters from the lead collection
// and stores them. The lead collection is the source of truth; the stored
// counters are a cache refreshed by this call.
func (s *TeamService) RecomputeStats(ctx context.Context, id string) (domain.TeamMember, error) {
	member, err := s.store.GetTeamMember(id)
	if err != nil {
		return domain.TeamMember{}, err
	}
	stats := ComputeMemberStats(s.store.Leads(), member.Name)
	return s.store.UpdateTeamMember(ctx, id, store.TeamMemberPatch{Stats: &stats})
}

// ComputeMemberStats counts the leads assigned to memberName. Active
// means not closed either way; conversion rate is closed-won over total,
// as a rounded percentage.
func ComputeMemberStats(leads []domain.Lead, memberName string) domain.MemberStats {
	stats := domain.MemberStats{}
	for _, lead := range leads {
		if lead.AssignedTo == nil || *lead.AssignedTo != memberName {
			continue
		}
		stats.TotalLeads++
		switch lead.Status {
		case domain.LeadStatusClosedWon:
			stats.ClosedDeals++
		case domain.LeadStatusClosedLost:
			// closed either way is not active
		default:
			stats.ActiveLeads++
		}
	}
	if stats.TotalLeads > 0 {
		stats.ConversionRate = math.Round(float64(stats.ClosedDeals) / float64(stats.TotalLeads) * 100)
	}
	return stats
}
