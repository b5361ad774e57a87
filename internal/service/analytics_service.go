package service

import (
	"github.com/spec-kit/estate-crm/internal/authz"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/store"
)

// DashboardStats summarizes the lead pipeline for the dashboard. The
// counts always cover the actor's visible slice only, so an agent's
// dashboard reflects just their assigned leads.
type DashboardStats struct {
	TotalLeads      int                       `json:"totalLeads"`
	LeadsByStatus   map[domain.LeadStatus]int `json:"leadsByStatus"`
	LeadsBySource   map[string]int            `json:"leadsBySource"`
	TotalProperties int                       `json:"totalProperties"`
	TotalMembers    int                       `json:"totalMembers"`
	ClosedWon       int                       `json:"closedWon"`
	ConversionRate  float64                   `json:"conversionRate"`
}

// AnalyticsService derives dashboard figures from the store.
type AnalyticsService struct {
	store *store.Store
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(entityStore *store.Store) *AnalyticsService {
	return &AnalyticsService{store: entityStore}
}

// Dashboard computes stats over the actor's visible lead slice. Property
// and team totals are included only for holders of view_full_stats.
func (s *AnalyticsService) Dashboard(actor events.Actor) DashboardStats {
	leads := authz.VisibleLeads(s.store.Leads(), actor.Role, actor.Name)

	stats := DashboardStats{
		TotalLeads:    len(leads),
		LeadsByStatus: make(map[domain.LeadStatus]int),
		LeadsBySource: make(map[string]int),
	}
	for _, lead := range leads {
		stats.LeadsByStatus[lead.Status]++
		if lead.Source != "" {
			stats.LeadsBySource[lead.Source]++
		}
		if lead.Status == domain.LeadStatusClosedWon {
			stats.ClosedWon++
		}
	}
	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(stats.ClosedWon) / float64(stats.TotalLeads) * 100
	}

	if authz.HasPermission(actor.Role, authz.PermViewFullStats) {
		stats.TotalProperties = len(s.store.Properties())
		stats.TotalMembers = len(s.store.TeamMembers())
	}
	return stats
}
