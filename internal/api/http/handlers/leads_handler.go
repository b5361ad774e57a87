package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/api/dto"
	"github.com/spec-kit/estate-crm/internal/auth"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/events"
	"github.com/spec-kit/estate-crm/internal/importer"
	"github.com/spec-kit/estate-crm/internal/service"
	"github.com/spec-kit/estate-crm/internal/store"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// LeadsHandler manages lead endpoints.
type LeadsHandler struct {
	leads *service.LeadService
}

// NewLeadsHandler constructs the handler.
func NewLeadsHandler(leads *service.LeadService) *LeadsHandler {
	return &LeadsHandler{leads: leads}
}

// List GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	filter := service.LeadFilter{Search: c.Query("search")}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.LeadStatus(strings.TrimSpace(part)))
		}
	}
	return c.JSON(fiber.Map{"data": h.leads.List(actor, filter)})
}

// Get GET /api/leads/:id.
func (h *LeadsHandler) Get(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	lead, err := h.leads.Get(actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lead})
}

// Create POST /api/leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return util.NewValidationError("name required", nil)
	}
	if strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "" {
		return util.NewValidationError("phone or email required", nil)
	}

	lead, err := h.leads.Create(c.UserContext(), actor, store.LeadInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		City:         req.City,
		Source:       req.Source,
		PropertyType: req.PropertyType,
		Notes:        req.Notes,
		Budget:       req.Budget,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": lead})
}

// Update PATCH /api/leads/:id.
func (h *LeadsHandler) Update(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.UpdateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	lead, err := h.leads.Update(c.UserContext(), actor, c.Params("id"), store.LeadPatch{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		City:         req.City,
		Status:       req.Status,
		Source:       req.Source,
		PropertyType: req.PropertyType,
		Notes:        req.Notes,
		Budget:       req.Budget,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lead})
}

// Delete DELETE /api/leads/:id.
func (h *LeadsHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.leads.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Assign POST /api/leads/:id/assign.
func (h *LeadsHandler) Assign(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req dto.AssignLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	lead, err := h.leads.Assign(c.UserContext(), actor, c.Params("id"), req.AssignedTo)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": lead})
}

// LinkProperty POST /api/leads/:id/properties/:propertyId.
func (h *LeadsHandler) LinkProperty(c *fiber.Ctx) error {
	if err := h.leads.LinkProperty(c.UserContext(), c.Params("id"), c.Params("propertyId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// UnlinkProperty DELETE /api/leads/:id/properties/:propertyId.
func (h *LeadsHandler) UnlinkProperty(c *fiber.Ctx) error {
	if err := h.leads.UnlinkProperty(c.UserContext(), c.Params("id"), c.Params("propertyId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Import POST /api/leads/import. The body is raw CSV.
func (h *LeadsHandler) Import(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	records, rowErrors, err := importer.ParseCSV(bytes.NewReader(c.Body()))
	if err != nil {
		return util.NewValidationError(err.Error(), nil)
	}
	imported, skipped, err := h.leads.ImportRecords(c.UserContext(), actor, records)
	if err != nil {
		return err
	}

	summary := dto.ImportSummary{Imported: imported, Skipped: skipped}
	for _, rowErr := range rowErrors {
		summary.Errors = append(summary.Errors, rowErr.Error())
	}
	return c.JSON(fiber.Map{"data": summary})
}

// requireActor converts the request principal into an explicit actor
// value for service calls.
func requireActor(c *fiber.Ctx) (events.Actor, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return events.Actor{}, util.NewUnauthorized("authentication required")
	}
	return events.Actor{Name: principal.Name, Role: principal.Role}, nil
}
