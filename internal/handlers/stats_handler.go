package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
)

type StatsHandler struct {
	service services.StatsService
}

func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.service.GetStatistics()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(stats)
}
