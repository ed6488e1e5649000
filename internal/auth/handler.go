package auth

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

type handler struct {
	authService Service
	validate    *validator.Validate
}

func NewHandler(authService Service) server.Handler {
	return &handler{
		authService: authService,
		validate:    validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	userGroup := app.Group("/auth/user")
	userGroup.Post("/register", h.RegisterUser)
	userGroup.Post("/login", h.LoginUser)
	userGroup.Post("/verify-email", h.VerifyUserEmail)
	userGroup.Post("/resend-verification", h.ResendUserVerification)
	userGroup.Post("/forgot-password", h.ForgotUserPassword)
	userGroup.Post("/verify-reset-code", h.VerifyUserResetCode)
	userGroup.Post("/reset-password", h.ResetUserPassword)
	userGroup.Post("/refresh", h.RefreshUserTokens)
	userGroup.Post("/logout", h.LogoutUser)

	adminGroup := app.Group("/auth/admin")
	adminGroup.Post("/login", h.LoginAdmin)
	adminGroup.Post("/forgot-password", h.ForgotAdminPassword)
	adminGroup.Post("/verify-reset-code", h.VerifyAdminResetCode)
	adminGroup.Post("/reset-password", h.ResetAdminPassword)
	adminGroup.Post("/refresh", h.RefreshAdminTokens)
	adminGroup.Post("/logout", h.LogoutAdmin)
}

func (h *handler) RegisterUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "registerUser"))

	var payload RegisterPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.RegisterUser(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusCreated, "verification code sent", nil)
}

func (h *handler) LoginUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "loginUser"))

	var payload LoginPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	loginResult, err := h.authService.LoginUser(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	if !loginResult.EmailVerified {
		return response.Success(ctx, fiber.StatusOK, "email verification required", loginResult)
	}

	return response.Success(ctx, fiber.StatusOK, "login successful", loginResult)
}

func (h *handler) VerifyUserEmail(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyUserEmail"))

	var payload VerifyCodePayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	tokens, err := h.authService.VerifyUserEmail(ctx.Context(), payload.Email, payload.Code)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "email verified", tokens)
}

func (h *handler) ResendUserVerification(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resendUserVerification"))

	var payload EmailPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.ResendUserVerification(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "verification code sent", nil)
}

func (h *handler) ForgotUserPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "forgotUserPassword"))

	var payload EmailPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.ForgotUserPassword(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "password reset code sent", nil)
}

func (h *handler) VerifyUserResetCode(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyUserResetCode"))

	var payload VerifyCodePayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	resetToken, err := h.authService.VerifyUserResetCode(ctx.Context(), payload.Email, payload.Code)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "reset code verified", fiber.Map{
		"resetToken": resetToken,
	})
}

func (h *handler) ResetUserPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetUserPassword"))

	var payload ResetPasswordPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.ResetUserPassword(ctx.Context(), payload.ResetToken, payload.NewPassword)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "password has been reset", nil)
}

func (h *handler) RefreshUserTokens(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshUserTokens"))

	var payload RefreshPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	tokens, err := h.authService.RefreshUserTokens(ctx.Context(), payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "tokens refreshed", tokens)
}

// LogoutUser always answers success: the tokens expire naturally even when
// the blacklist write fails, and that failure is logged, not surfaced.
func (h *handler) LogoutUser(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logoutUser"))

	var payload LogoutPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	h.authService.LogoutUser(ctx.Context(), payload.AccessToken, payload.RefreshToken)

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "logged out", nil)
}

func (h *handler) LoginAdmin(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "loginAdmin"))

	var payload LoginPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	tokens, err := h.authService.LoginAdmin(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "login successful", tokens)
}

func (h *handler) ForgotAdminPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "forgotAdminPassword"))

	var payload EmailPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.ForgotAdminPassword(ctx.Context(), payload.Email)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "password reset code sent", nil)
}

func (h *handler) VerifyAdminResetCode(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyAdminResetCode"))

	var payload VerifyCodePayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.VerifyAdminResetCode(ctx.Context(), payload.Email, payload.Code)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "reset code verified", fiber.Map{
		"verified": true,
	})
}

func (h *handler) ResetAdminPassword(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "resetAdminPassword"))

	var payload AdminResetPasswordPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	err = h.authService.ResetAdminPassword(ctx.Context(), payload.Email, payload.NewPassword)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "password has been reset", nil)
}

func (h *handler) RefreshAdminTokens(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshAdminTokens"))

	var payload RefreshPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	tokens, err := h.authService.RefreshAdminTokens(ctx.Context(), payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "tokens refreshed", tokens)
}

func (h *handler) LogoutAdmin(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logoutAdmin"))

	var payload LogoutPayload
	err := h.parseBody(ctx, &payload)
	if err != nil {
		return err
	}

	h.authService.LogoutAdmin(ctx.Context(), payload.AccessToken, payload.RefreshToken)

	log.Info(logger.EventFinishedSuccessfully)
	return response.Success(ctx, fiber.StatusOK, "logged out", nil)
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
