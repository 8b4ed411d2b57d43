package routers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/cmd"
)

func SetupSystemRouter(api fiber.Router, server *cmd.Server) {
	api.Get("/health", server.HealthHandler.Health)
	api.Get("/stats", server.StatsHandler.GetStatistics)
}
