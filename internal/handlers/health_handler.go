package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/config"
)

type HealthHandler struct {
	cfg *config.Configuration
}

func NewHealthHandler(cfg *config.Configuration) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"database":  h.cfg.Database.Driver,
	})
}
