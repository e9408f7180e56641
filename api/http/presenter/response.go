package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationResponse lists the rejected fields of a request.
type ValidationResponse struct {
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Validation answers 400 with per-field messages.
func Validation(c *fiber.Ctx, message string, fields map[string][]string) error {
	return JSON(c, fiber.StatusBadRequest, ValidationResponse{Message: message, Fields: fields})
}
