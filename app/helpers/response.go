package helpers

import (
	"errors"

	"campus-events/app/services"

	"github.com/gofiber/fiber/v2"
)

// JsonOK writes a success payload.
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonCreated writes a success payload with a 201 status.
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonError writes an error payload with the given status.
func JsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ServiceError maps a service error onto its HTTP status and writes it.
func ServiceError(c *fiber.Ctx, err error) error {
	return JsonError(c, StatusForError(err), err.Error())
}

// StatusForError translates the service error taxonomy into HTTP statuses.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrCapacityExceeded):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
