package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"account-api/pkg/logger"
)

// Middleware is the Fiber error handler. Custom errors are logged with their
// declared severity and rendered into the shared response envelope; anything
// else becomes an opaque 500.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		return ctx.
			Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{
				"status":  "error",
				"message": "internal server error",
			})
	}

	sugaredLogger := logger.FromContext(ctx.Context())
	log := sugaredLogger.Desugar()
	for _, field := range cerr.LogFields {
		log = log.With(field)
	}
	log.Log(cerr.LogSeverity, cerr.LogMessage)

	body := fiber.Map{
		"status":  "error",
		"message": cerr.LogMessage,
	}
	if len(cerr.ValidationErrors) > 0 {
		body["errors"] = cerr.ValidationErrors
	}

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(body)
}
