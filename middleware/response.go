package middleware

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the conventional {"error": "..."} body
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse reports per-field validation failures. Same 400
// and "error" key as every other client error, fields carry the details.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed!",
		"fields": fields,
	})
}
