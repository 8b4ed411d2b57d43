package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
	"stockroom/internal/validation"
)

type BoxHandler struct {
	service  services.BoxService
	validate *validation.Validator
}

func NewBoxHandler(service services.BoxService, validate *validation.Validator) *BoxHandler {
	return &BoxHandler{service: service, validate: validate}
}

type boxCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Location    string `json:"location" validate:"max=255"`
	Description string `json:"description"`
}

type boxUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes(
		c.Query("search"),
		c.Query("location"),
		c.Query("sort_by", "name"),
		c.Query("sort_order", "asc"),
	)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req boxCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid input"})
	}
	if err := h.validate.Validate(req); err != nil {
		return validationResponse(c, err)
	}

	box, err := h.service.CreateBox(req.Name, req.Location, req.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	box, err := h.service.GetBoxByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	var req boxUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid input"})
	}
	if err := h.validate.Validate(req); err != nil {
		return validationResponse(c, err)
	}

	box, err := h.service.UpdateBox(c.Params("id"), req.Name, req.Location, req.Description)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	if err := h.service.DeleteBox(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Box and all its items deleted successfully"})
}
