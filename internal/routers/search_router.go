package routers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/cmd"
)

func SetupSearchRouter(api fiber.Router, server *cmd.Server) {
	api.Get("/search", server.SearchHandler.GlobalSearch)
}
