package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/service"
)

// DashboardHandler serves aggregate pipeline figures.
type DashboardHandler struct {
	analytics *service.AnalyticsService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Stats GET /api/dashboard.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.analytics.Dashboard(actor)})
}
