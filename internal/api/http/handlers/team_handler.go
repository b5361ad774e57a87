package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/api/dto"
	"github.com/spec-kit/estate-crm/internal/domain"
	"github.com/spec-kit/estate-crm/internal/service"
	"github.com/spec-kit/estate-crm/internal/store"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// TeamHandler manages team-member endpoints.
type TeamHandler struct {
	team *service.TeamService
}

// NewTeamHandler constructs the handler.
func NewTeamHandler(team *service.TeamService) *TeamHandler {
	return &TeamHandler{team: team}
}

// List GET /api/team.
func (h *TeamHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.team.List()})
}

// Get GET /api/team/:id.
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	member, err := h.team.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": member})
}

// Create POST /api/team.
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return util.NewValidationError("name and email required", nil)
	}
	if !domain.ValidRole(req.Role) {
		return util.NewValidationError("unknown role", map[string]any{"role": req.Role})
	}

	member, err := h.team.Create(c.UserContext(), store.TeamMemberInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": member})
}

// Update PATCH /api/team/:id.
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTeamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.Role != nil && !domain.ValidRole(*req.Role) {
		return util.NewValidationError("unknown role", map[string]any{"role": *req.Role})
	}
	member, err := h.team.Update(c.UserContext(), c.Params("id"), store.TeamMemberPatch{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": member})
}

// Delete DELETE /api/team/:id.
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.team.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// RecomputeStats POST /api/team/:id/stats/recompute.
func (h *TeamHandler) RecomputeStats(c *fiber.Ctx) error {
	member, err := h.team.RecomputeStats(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": member})
}
