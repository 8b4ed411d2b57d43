package routers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/cmd"
)

func SetupBoxRouter(api fiber.Router, server *cmd.Server) {
	boxHandler := server.BoxHandler
	api.Get("/boxes", boxHandler.ListBoxes)
	api.Post("/boxes", boxHandler.CreateBox)
	api.Get("/boxes/:id", boxHandler.GetBoxByID)
	api.Put("/boxes/:id", boxHandler.UpdateBox)
	api.Delete("/boxes/:id", boxHandler.DeleteBox)
}
