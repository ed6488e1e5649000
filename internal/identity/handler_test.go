//go:build unit

package identity

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-api/pkg/cerror"
	"account-api/pkg/server"
)

func passThroughGuard(ctx *fiber.Ctx) error {
	ctx.Locals(accountIdLocal, TestUserId)
	return ctx.Next()
}

func allowAll(ctx *fiber.Ctx) error {
	return ctx.Next()
}

func denyAll(ctx *fiber.Ctx) error {
	return cerror.NewError(fiber.StatusUnauthorized, "insufficient permissions")
}

func buildHandlerApp(identityService Service, adminOnly, superAdminOnly fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	NewHandler(identityService, passThroughGuard, passThroughGuard, adminOnly, superAdminOnly).
		RegisterRoutes(app)

	return app
}

func TestNewHandler(t *testing.T) {
	identityHandler := NewHandler(nil, nil, nil, nil, nil)

	assert.Implements(t, (*server.Handler)(nil), identityHandler)
}

func TestHandler_GetProfile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().GetUserProfile(gomock.Any(), TestUserId).Return(&ProfileView{
			Id:    TestUserId,
			Email: TestEmail,
		}, nil)

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		resp, _ := app.Test(httptest.NewRequest(fiber.MethodGet, "/user/profile", nil))

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("when service returns error should propagate its status", func(t *testing.T) {
		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().
			GetUserProfile(gomock.Any(), TestUserId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "user not found"))

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		resp, _ := app.Test(httptest.NewRequest(fiber.MethodGet, "/user/profile", nil))

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_UpdateProfile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		updatePayload := UpdateProfilePayload{
			Name: "new-name",
		}

		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().
			UpdateUserProfile(gomock.Any(), TestUserId, &updatePayload).
			Return(nil)

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		reqBody, err := json.Marshal(&updatePayload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPut, "/user/profile", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("invalid email should return bad request", func(t *testing.T) {
		app := buildHandlerApp(nil, allowAll, allowAll)

		reqBody, err := json.Marshal(&UpdateProfilePayload{
			Email: "not-a-mail",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPut, "/user/profile", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_ChangePassword(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().
			ChangeUserPassword(gomock.Any(), TestUserId, TestPassword, "new-password-123").
			Return(nil)

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		reqBody, err := json.Marshal(&ChangePasswordPayload{
			CurrentPassword: TestPassword,
			NewPassword:     "new-password-123",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPut, "/user/password", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("too short new password should return bad request", func(t *testing.T) {
		app := buildHandlerApp(nil, allowAll, allowAll)

		reqBody, err := json.Marshal(&ChangePasswordPayload{
			CurrentPassword: TestPassword,
			NewPassword:     "short",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPut, "/user/password", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_SetUserStatus(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().
			SetUserStatus(gomock.Any(), TestUserId, StatusDeactivated).
			Return(nil)

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		reqBody, err := json.Marshal(&SetUserStatusPayload{
			Status: StatusDeactivated,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPatch, "/admin/users/"+TestUserId+"/status", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown status value should return bad request", func(t *testing.T) {
		app := buildHandlerApp(nil, allowAll, allowAll)

		reqBody, err := json.Marshal(&SetUserStatusPayload{
			Status: "SLEEPING",
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPatch, "/admin/users/"+TestUserId+"/status", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("role gate rejects non-admins", func(t *testing.T) {
		app := buildHandlerApp(nil, denyAll, allowAll)

		reqBody, err := json.Marshal(&SetUserStatusPayload{
			Status: StatusDeactivated,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPatch, "/admin/users/"+TestUserId+"/status", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestHandler_CreateAdmin(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	createPayload := CreateAdminPayload{
		Name:     "test-admin",
		Email:    TestEmail,
		Password: TestPassword,
		Role:     RoleModerator,
	}

	t.Run("happy path", func(t *testing.T) {
		mockIdentityService := NewMockService(mockController)
		mockIdentityService.EXPECT().
			CreateAdmin(gomock.Any(), &createPayload).
			Return("new-admin-id", nil)

		app := buildHandlerApp(mockIdentityService, allowAll, allowAll)

		reqBody, err := json.Marshal(&createPayload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/admin/admins", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("only super admins may create admins", func(t *testing.T) {
		app := buildHandlerApp(nil, allowAll, denyAll)

		reqBody, err := json.Marshal(&createPayload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/admin/admins", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown role should return bad request", func(t *testing.T) {
		invalidPayload := createPayload
		invalidPayload.Role = "INTERN"

		app := buildHandlerApp(nil, allowAll, allowAll)

		reqBody, err := json.Marshal(&invalidPayload)
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodPost, "/admin/admins", bytes.NewReader(reqBody))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
