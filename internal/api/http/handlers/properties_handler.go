package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-crm/internal/api/dto"
	"github.com/spec-kit/estate-crm/internal/service"
	"github.com/spec-kit/estate-crm/internal/store"
	"github.com/spec-kit/estate-crm/pkg/util"
)

// PropertiesHandler manages listing endpoints.
type PropertiesHandler struct {
	properties *service.PropertyService
}

// NewPropertiesHandler constructs the handler.
func NewPropertiesHandler(properties *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

// List GET /api/properties.
func (h *PropertiesHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.properties.List()})
}

// Get GET /api/properties/:id.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	property, err := h.properties.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": property})
}

// Create POST /api/properties.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return util.NewValidationError("title required", nil)
	}

	property, err := h.properties.Create(c.UserContext(), store.PropertyInput{
		Title:       req.Title,
		Location:    req.Location,
		City:        req.City,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Type:        req.Type,
		Images:      req.Images,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": property})
}

// Update PATCH /api/properties/:id.
func (h *PropertiesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	property, err := h.properties.Update(c.UserContext(), c.Params("id"), store.PropertyPatch{
		Title:       req.Title,
		Location:    req.Location,
		City:        req.City,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Type:        req.Type,
		Status:      req.Status,
		Images:      req.Images,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": property})
}

// Delete DELETE /api/properties/:id.
func (h *PropertiesHandler) Delete(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	if err := h.properties.Delete(c.UserContext(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
