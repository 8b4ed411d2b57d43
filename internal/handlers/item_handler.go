package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
	"stockroom/internal/validation"
)

type ItemHandler struct {
	service  services.ItemService
	validate *validation.Validator
}

func NewItemHandler(service services.ItemService, validate *validation.Validator) *ItemHandler {
	return &ItemHandler{service: service, validate: validate}
}

type itemCreateRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Quantity *int   `json:"quantity" validate:"omitempty,gte=0"`
	Details  string `json:"details"`
	BoxID    string `json:"box_id" validate:"required"`
}

type itemUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0"`
	Details  *string `json:"details"`
}

func (h *ItemHandler) ListItemsInBox(c *fiber.Ctx) error {
	minQuantity, err := intQuery(c, "min_quantity")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid min_quantity"})
	}
	maxQuantity, err := intQuery(c, "max_quantity")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid max_quantity"})
	}

	items, err := h.service.GetItemsInBox(
		c.Params("id"),
		c.Query("search"),
		minQuantity,
		maxQuantity,
		c.Query("sort_by", "name"),
		c.Query("sort_order", "asc"),
	)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req itemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid input"})
	}
	if err := h.validate.Validate(req); err != nil {
		return validationResponse(c, err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	item, err := h.service.CreateItem(req.Name, quantity, req.Details, req.BoxID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	item, err := h.service.GetItemByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var req itemUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid input"})
	}
	if err := h.validate.Validate(req); err != nil {
		return validationResponse(c, err)
	}

	item, err := h.service.UpdateItem(c.Params("id"), req.Name, req.Quantity, req.Details)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted successfully"})
}

func intQuery(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
