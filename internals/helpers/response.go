package helper

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level Fiber error handler. Handlers signal
// client-facing failures with fiber.NewError; everything else is an
// unclassified 500. The wire shape is always {"detail": "<message>"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Detail(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] unhandled: %v", err)
	return Detail(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// Detail writes {"detail": message} with the given status code.
func Detail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"detail": message,
	})
}

// DetailFields writes {"detail": {field: message, ...}} — used for
// validation failures, which reject the request before any handler logic.
func DetailFields(c *fiber.Ctx, code int, fields map[string]string) error {
	return c.Status(code).JSON(fiber.Map{
		"detail": fields,
	})
}

// ValidationError maps validator.v10 errors to a 422 with per-field messages.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Detail(c, fiber.StatusUnprocessableEntity, "Invalid input")
	}

	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		switch fieldErr.Tag() {
		case "required":
			fields[fieldErr.Field()] = "field required"
		case "email":
			fields[fieldErr.Field()] = "value is not a valid email address"
		case "min":
			fields[fieldErr.Field()] = "must be at least " + fieldErr.Param() + " characters"
		case "max":
			fields[fieldErr.Field()] = "must be at most " + fieldErr.Param() + " characters"
		default:
			fields[fieldErr.Field()] = "invalid value"
		}
	}
	return DetailFields(c, fiber.StatusUnprocessableEntity, fields)
}
