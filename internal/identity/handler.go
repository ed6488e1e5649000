package identity

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"account-api/pkg/cerror"
	"account-api/pkg/logger"
	"account-api/pkg/response"
	"account-api/pkg/server"
)

// Local key written by the auth guard.
const accountIdLocal = "accountId"

type handler struct {
	identityService Service
	validate        *validator.Validate

	userGuard      fiber.Handler
	adminGuard     fiber.Handler
	adminOnly      fiber.Handler
	superAdminOnly fiber.Handler
}

func NewHandler(
	identityService Service,
	userGuard, adminGuard, adminOnly, superAdminOnly fiber.Handler,
) server.Handler {
	return &handler{
		identityService: identityService,
		validate:        validator.New(),
		userGuard:       userGuard,
		adminGuard:      adminGuard,
		adminOnly:       adminOnly,
		superAdminOnly:  superAdminOnly,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	userGroup := app.Group("/user", h.userGuard)
	userGroup.Get("/profile", h.GetProfile)
	userGroup.Put("/profile", h.UpdateProfile)
	userGroup.Put("/password", h.ChangePassword)

	adminGroup := app.Group("/admin", h.adminGuard)
	adminGroup.Get("/users/:userId", h.GetUser)
	adminGroup.Patch("/users/:userId/status", h.adminOnly, h.SetUserStatus)
	adminGroup.Post("/admins", h.superAdminOnly, h.CreateAdmin)
}

func (h *handler) GetProfile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserProfile"))

	accountId, _ := ctx.Locals(accountIdLocal).(string)
	profile, err := h.identityService.GetUserProfile(ctx.Context(), accountId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "", profile)
}

func (h *handler) UpdateProfile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateUserProfile"))

	var payload UpdateProfilePayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	accountId, _ := ctx.Locals(accountIdLocal).(string)
	err = h.identityService.UpdateUserProfile(ctx.Context(), accountId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "profile updated", nil)
}

func (h *handler) ChangePassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "changeUserPassword"))

	var payload ChangePasswordPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	accountId, _ := ctx.Locals(accountIdLocal).(string)
	err = h.identityService.ChangeUserPassword(
		ctx.Context(),
		accountId,
		payload.CurrentPassword,
		payload.NewPassword,
	)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "password changed", nil)
}

func (h *handler) GetUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUser"))

	profile, err := h.identityService.GetUserProfile(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "", profile)
}

func (h *handler) SetUserStatus(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "setUserStatus"))

	var payload SetUserStatusPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.identityService.SetUserStatus(ctx.Context(), ctx.Params("userId"), payload.Status)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "user status updated", nil)
}

func (h *handler) CreateAdmin(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createAdmin"))

	var payload CreateAdminPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	adminId, err := h.identityService.CreateAdmin(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusCreated, "admin created", fiber.Map{
		"adminId": adminId,
	})
}

func (h *handler) parseBody(ctx *fiber.Ctx, payload interface{}) error {
	err := ctx.BodyParser(payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel)
	}

	err = h.validate.Struct(payload)
	if err != nil {
		var validationErrors []string
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				validationErrors = append(
					validationErrors,
					fmt.Sprintf("%s failed on the '%s' rule", fieldError.Field(), fieldError.Tag()),
				)
			}
		}

		return cerror.NewError(
			fiber.StatusBadRequest,
			"malformed request body",
		).SetSeverity(zap.WarnLevel).
			SetValidationErrors(validationErrors)
	}

	return nil
}
