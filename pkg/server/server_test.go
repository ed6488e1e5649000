//go:build unit

package server

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"account-api/pkg/config"
)

type stubHandler struct{}

func (h *stubHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})
}

func TestServer(t *testing.T) {
	t.Run("should create server instance and return server instance", func(t *testing.T) {
		cfg := &config.Config{
			ServerPort: "8080",
		}

		var handlers []Handler
		testServer := NewServer(cfg, handlers)

		assert.IsType(t, &server{}, testServer)
	})

	t.Run("should server start and stop", func(t *testing.T) {
		cfg := &config.Config{
			ServerPort: "8080",
		}

		var handlers []Handler
		testServer := NewServer(cfg, handlers)

		go func() {
			err := testServer.Start()
			assert.NoError(t, err)
		}()

		err := testServer.Shutdown()
		assert.NoError(t, err)
	})
}

func TestServer_GetFiberInstance(t *testing.T) {
	testServer := &server{
		fiber: fiber.New(),
	}
	fiberInstance := testServer.GetFiberInstance()

	assert.IsType(t, fiberInstance, testServer.fiber)
}

func TestServer_RegisterRoutes(t *testing.T) {
	cfg := &config.Config{
		ServerPort: "8080",
	}

	testServer := NewServer(cfg, []Handler{&stubHandler{}})
	testServer.RegisterRoutes()

	resp, err := testServer.GetFiberInstance().Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))

	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
