package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/api/http/handlers"
	"github.com/spec-kit/estate-crm/internal/auth"
	"github.com/spec-kit/estate-crm/internal/authz"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Leads          *handlers.LeadsHandler
	Properties     *handlers.PropertiesHandler
	Team           *handlers.TeamHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every /api route sits behind the
// bearer-token middleware; the permission guards mirror the role table.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/dashboard", auth.RequirePermission(authz.PermViewDashboard), cfg.Dashboard.Stats)

	// Listing accepts either lead-view permission; the service narrows
	// the result to the caller's visible slice.
	viewLeads := auth.Require(authz.Requirement{
		Permissions: []authz.Permission{authz.PermViewAllLeads, authz.PermViewAssignedLeads},
	})

	leads := api.Group("/leads")
	leads.Get("", viewLeads, cfg.Leads.List)
	leads.Post("", auth.RequirePermission(authz.PermAddLead), cfg.Leads.Create)
	leads.Post("/import", auth.RequirePermission(authz.PermImportLeads), cfg.Leads.Import)
	leads.Get("/:id", viewLeads, cfg.Leads.Get)
	leads.Patch("/:id", auth.RequirePermission(authz.PermEditLead), cfg.Leads.Update)
	leads.Delete("/:id", auth.RequirePermission(authz.PermDeleteLead), cfg.Leads.Delete)
	leads.Post("/:id/assign", auth.RequirePermission(authz.PermAssignLead), cfg.Leads.Assign)
	leads.Post("/:id/properties/:propertyId", auth.RequirePermission(authz.PermEditLead), cfg.Leads.LinkProperty)
	leads.Delete("/:id/properties/:propertyId", auth.RequirePermission(authz.PermEditLead), cfg.Leads.UnlinkProperty)

	properties := api.Group("/properties")
	properties.Get("", auth.RequirePermission(authz.PermViewProperties), cfg.Properties.List)
	properties.Post("", auth.RequirePermission(authz.PermAddProperty), cfg.Properties.Create)
	properties.Get("/:id", auth.RequirePermission(authz.PermViewProperties), cfg.Properties.Get)
	properties.Patch("/:id", auth.RequirePermission(authz.PermEditProperty), cfg.Properties.Update)
	properties.Delete("/:id", auth.RequirePermission(authz.PermDeleteProperty), cfg.Properties.Delete)

	viewTeam := auth.Require(authz.Requirement{
		Permissions: []authz.Permission{authz.PermManageUsers, authz.PermViewTeam},
	})

	team := api.Group("/team")
	team.Get("", viewTeam, cfg.Team.List)
	team.Post("", auth.RequirePermission(authz.PermManageUsers), cfg.Team.Create)
	team.Get("/:id", viewTeam, cfg.Team.Get)
	team.Patch("/:id", auth.RequirePermission(authz.PermManageUsers), cfg.Team.Update)
	team.Delete("/:id", auth.RequirePermission(authz.PermManageUsers), cfg.Team.Delete)
	team.Post("/:id/stats/recompute", auth.RequirePermission(authz.PermManageUsers), cfg.Team.RecomputeStats)
}
