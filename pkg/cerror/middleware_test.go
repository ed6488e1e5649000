//go:build unit

package cerror

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func buildTestApp(routeError error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: Middleware,
	})
	app.Get("/", func(ctx *fiber.Ctx) error {
		return routeError
	})

	return app
}

func TestMiddleware(t *testing.T) {
	t.Run("custom error renders status and message", func(t *testing.T) {
		app := buildTestApp(
			NewError(fiber.StatusConflict, "user already exists").
				SetSeverity(zapcore.WarnLevel),
		)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(respBody, &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "user already exists", body["message"])
		assert.NotContains(t, body, "errors")
	})

	t.Run("validation errors are included in the body", func(t *testing.T) {
		app := buildTestApp(
			NewError(fiber.StatusBadRequest, "malformed request body").
				SetValidationErrors([]string{"Email failed on the 'email' rule"}),
		)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(respBody, &body))
		assert.Contains(t, body, "errors")
	})

	t.Run("unknown error becomes opaque 500", func(t *testing.T) {
		app := buildTestApp(errors.New("driver exploded"))

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(respBody, &body))
		assert.Equal(t, "internal server error", body["message"])
	})
}
