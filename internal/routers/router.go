package routers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/cmd"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api")
	SetupBoxRouter(api, server)
	SetupItemRouter(api, server)
	SetupSearchRouter(api, server)
	SetupSystemRouter(api, server)
}
