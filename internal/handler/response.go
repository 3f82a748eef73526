package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"inventory-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// writeError maps service error kinds onto status codes. Anything without a
// known kind is logged and hidden behind a plain-text 500.
func writeError(c *fiber.Ctx, err error) error {
	status := 0
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrDuplicateKey):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	}

	if status == 0 {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	}
	return c.Status(status).JSON(fiber.Map{"msg": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"msg": msg})
}

// bodyError reports a body that could not be decoded. A well-formed body with
// a field of the wrong JSON type names the field instead of "Invalid JSON".
func bodyError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return badRequest(c, fmt.Sprintf("Field '%s' must be of type %s", typeErr.Field, typeErr.Type))
	}
	return badRequest(c, "Invalid JSON")
}
