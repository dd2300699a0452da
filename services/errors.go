// services/errors.go
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Request-scoped failure taxonomy shared by the score services. Nothing in
// here is fatal to the process — handlers map each one to a response and
// move on.
var (
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// respondServiceError translates a service error into the JSON error shape
// the gateway expects.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "DB error"})
	}
}
