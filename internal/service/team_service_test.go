package service

import (
	"context"
	"testing"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/internal/store"
)

func newTeamFixture(t *testing.T) (*TeamService, *store.Store, *recordingDispatcher) {
	t.Helper()
	entityStore := store.New(persistence.NewMemorySnapshotter())
	if err := entityStore.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	dispatcher := &recordingDispatcher{}
	return NewTeamService(entityStore, dispatcher), entityStore, dispatcher
}

func assignLead(t *testing.T, entityStore *store.Store, name string, status domain.LeadStatus) {
	t.Helper()
	ctx := context.Background()
	lead, err := entityStore.AddLead(ctx, store.LeadInput{Name: "lead for " + name})
	if err != nil {
		t.Fatalf("AddLead: %v", err)
	}
	assignee := &name
	if _, err := entityStore.UpdateLead(ctx, lead.ID, store.LeadPatch{
		Status:     &status,
		AssignedTo: &assignee,
	}); err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}
}

func TestComputeMemberStats(t *testing.T) {
	_, entityStore, _ := newTeamFixture(t)

	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusNew)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusContacted)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusClosedWon)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusClosedLost)
	assignLead(t, entityStore, "Carol Agent", domain.LeadStatusNew)

	stats := ComputeMemberStats(entityStore.Leads(), "Bob Agent")
	if stats.TotalLeads != 4 {
		t.Errorf("TotalLeads = %d, want 4", stats.TotalLeads)
	}
	if stats.ActiveLeads != 2 {
		t.Errorf("ActiveLeads = %d, want 2", stats.ActiveLeads)
	}
	if stats.ClosedDeals != 1 {
		t.Errorf("ClosedDeals = %d, want 1", stats.ClosedDeals)
	}
	if stats.ConversionRate != 25 {
		t.Errorf("ConversionRate = %v, want 25", stats.ConversionRate)
	}

	empty := ComputeMemberStats(entityStore.Leads(), "Nobody")
	if empty != (domain.MemberStats{}) {
		t.Errorf("stats for unknown member = %+v, want zero", empty)
	}
}

func TestRecomputeStatsPersistsCounters(t *testing.T) {
	svc, entityStore, _ := newTeamFixture(t)
	ctx := context.Background()

	member, err := svc.Create(ctx, store.TeamMemberInput{Name: "Bob Agent", Email: "bob@crm.test", Role: domain.RoleAgent})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusClosedWon)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusNew)

	updated, err := svc.RecomputeStats(ctx, member.ID)
	if err != nil {
		t.Fatalf("RecomputeStats: %v", err)
	}
	if updated.Stats.TotalLeads != 2 || updated.Stats.ClosedDeals != 1 || updated.Stats.ConversionRate != 50 {
		t.Fatalf("stats = %+v, want 2 total / 1 closed / 50%%", updated.Stats)
	}

	stored, _ := entityStore.GetTeamMember(member.ID)
	if stored.Stats != updated.Stats {
		t.Fatal("recomputed stats must be stored on the member")
	}
}

func TestTeamDeletePublishesCascadeFootprint(t *testing.T) {
	svc, entityStore, dispatcher := newTeamFixture(t)
	ctx := context.Background()

	member, _ := svc.Create(ctx, store.TeamMemberInput{Name: "Bob Agent", Email: "bob@crm.test", Role: domain.RoleAgent})
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusNew)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusContacted)

	if err := svc.Delete(ctx, managerActor, member.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	event, ok := dispatcher.lastOfType(events.EventMemberRemoved)
	if !ok {
		t.Fatal("expected member_removed event")
	}
	payload, ok := event.Payload.(events.MemberRemovedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Payload)
	}
	if payload.Name != "Bob Agent" || payload.UnassignedLeads != 2 {
		t.Fatalf("payload = %+v, want Bob Agent / 2", payload)
	}

	for _, lead := range entityStore.Leads() {
		if lead.AssignedTo != nil {
			t.Fatal("cascade must clear assignments")
		}
	}
}
