package routers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/cmd"
)

func SetupItemRouter(api fiber.Router, server *cmd.Server) {
	itemHandler := server.ItemHandler
	api.Get("/boxes/:id/items", itemHandler.ListItemsInBox)
	api.Post("/items", itemHandler.CreateItem)
	api.Get("/items/:id", itemHandler.GetItemByID)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)
}
