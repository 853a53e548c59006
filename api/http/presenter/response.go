package presenter

import "github.com/gofiber/fiber/v2"

// SuccessResponse is the envelope for successful calls.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed calls. Error carries the raw cause.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ListResponse always carries data, an empty list included.
type ListResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ValidationResponse lists field errors of a rejected request.
type ValidationResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Success(c *fiber.Ctx, status int, message string, data any) error {
	return JSON(c, status, SuccessResponse{Success: true, Message: message, Data: data})
}

func List(c *fiber.Ctx, status int, message string, data any) error {
	return JSON(c, status, ListResponse{Success: true, Message: message, Data: data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Failure reports err's text to the client alongside message.
func Failure(c *fiber.Ctx, status int, message string, err error) error {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return JSON(c, status, resp)
}

func Invalid(c *fiber.Ctx, fields map[string]string) error {
	return JSON(c, fiber.StatusUnprocessableEntity, ValidationResponse{
		Message: "The given data was invalid.",
		Errors:  fields,
	})
}
