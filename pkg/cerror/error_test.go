//go:build unit

package cerror

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewError(t *testing.T) {
	cerr := NewError(
		fiber.StatusInternalServerError,
		"something went wrong",
		zap.String("requestId", "abcd"),
	)

	assert.Equal(t, fiber.StatusInternalServerError, cerr.HttpStatusCode)
	assert.Equal(t, "something went wrong", cerr.LogMessage)
	assert.Equal(t, zapcore.ErrorLevel, cerr.LogSeverity)
	assert.Len(t, cerr.LogFields, 1)
}

func TestCustomError_Error(t *testing.T) {
	cerr := NewError(fiber.StatusBadRequest, "bad input")

	assert.Equal(t, "bad input", cerr.Error())
}

func TestCustomError_SetSeverity(t *testing.T) {
	cerr := NewError(fiber.StatusBadRequest, "bad input").
		SetSeverity(zapcore.WarnLevel)

	assert.Equal(t, zapcore.WarnLevel, cerr.LogSeverity)
}

func TestCustomError_SetValidationErrors(t *testing.T) {
	validationErrors := []string{"Email failed on the 'email' rule"}

	cerr := NewError(fiber.StatusBadRequest, "malformed request body").
		SetValidationErrors(validationErrors)

	assert.Equal(t, validationErrors, cerr.ValidationErrors)
}
