package response

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the shared response shape for every endpoint.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(ctx *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return ctx.
		Status(statusCode).
		JSON(Envelope{
			Status:  "success",
			Message: message,
			Data:    data,
		})
}
