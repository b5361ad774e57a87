package service

import (
	"context"
	"testing"

	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/persistence"
	"github.com/spec-kit/estate-crm/internal/store"
)

func TestDashboardScopesToVisibleLeads(t *testing.T) {
	entityStore := store.New(persistence.NewMemorySnapshotter())
	ctx := context.Background()
	if err := entityStore.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	svc := NewAnalyticsService(entityStore)

	_, _ = entityStore.AddProperty(ctx, store.PropertyInput{Title: "Lakeview Villa"})
	_, _ = entityStore.AddTeamMember(ctx, store.TeamMemberInput{Name: "Bob Agent", Role: domain.RoleAgent})

	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusClosedWon)
	assignLead(t, entityStore, "Bob Agent", domain.LeadStatusNew)
	assignLead(t, entityStore, "Carol Agent", domain.LeadStatusNew)

	manager := svc.Dashboard(events.Actor{Name: "The Manager", Role: domain.RoleManager})
	if manager.TotalLeads != 3 {
		t.Errorf("manager TotalLeads = %d, want 3", manager.TotalLeads)
	}
	if manager.TotalProperties != 1 || manager.TotalMembers != 1 {
		t.Error("manager must see property and member totals")
	}
	if manager.ClosedWon != 1 {
		t.Errorf("ClosedWon = %d, want 1", manager.ClosedWon)
	}
	if manager.LeadsByStatus[domain.LeadStatusNew] != 2 {
		t.Errorf("LeadsByStatus[new] = %d, want 2", manager.LeadsByStatus[domain.LeadStatusNew])
	}

	agent := svc.Dashboard(events.Actor{Name: "Bob Agent", Role: domain.RoleAgent})
	if agent.TotalLeads != 2 {
		t.Errorf("agent TotalLeads = %d, want 2", agent.TotalLeads)
	}
	if agent.ConversionRate != 50 {
		t.Errorf("agent ConversionRate = %v, want 50", agent.ConversionRate)
	}
	// agents lack view_full_stats
	if agent.TotalProperties != 0 || agent.TotalMembers != 0 {
		t.Error("agent dashboard must omit property and member totals")
	}
}
