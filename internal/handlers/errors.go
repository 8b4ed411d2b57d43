package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/models"
	"stockroom/internal/services"
	"stockroom/internal/validation"
)

// errorResponse translates a service error into the HTTP taxonomy: missing
// entities map to 404, bad query parameters to 400, everything else is a
// store fault surfaced as 500. The body always carries a detail message.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrBoxNotFound), errors.Is(err, models.ErrItemNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"detail": err.Error()})
	case errors.Is(err, services.ErrInvalidSortField):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
}

func validationResponse(c *fiber.Ctx, err error) error {
	var validationErrs validation.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"detail": validationErrs})
	}
	return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"detail": err.Error()})
}
