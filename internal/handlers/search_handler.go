package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) GlobalSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "q is required"})
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(services.DefaultSearchLimit)))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": "invalid limit"})
	}

	results, err := h.service.GlobalSearch(query, limit)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(results)
}
