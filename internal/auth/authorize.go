package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"account-api/pkg/cerror"
)

// RequireRoles gates a route on the authenticated account's role. An empty
// role list means no restriction. Rejections are an audit signal: the warning
// carries the account id (or "unknown") and the source IP. Role mismatches
// answer 401, matching the rest of the authentication surface.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if len(allowedRoles) == 0 {
			return ctx.Next()
		}

		accountRole, _ := ctx.Locals(LocalAccountRole).(string)
		for _, allowedRole := range allowedRoles {
			if accountRole == allowedRole {
				return ctx.Next()
			}
		}

		accountId, _ := ctx.Locals(LocalAccountId).(string)
		if accountId == "" {
			accountId = "unknown"
		}

		return cerror.NewError(
			fiber.StatusUnauthorized,
			"insufficient permissions",
			zap.String("accountId", accountId),
			zap.String("sourceIp", ctx.IP()),
		).SetSeverity(zapcore.WarnLevel)
	}
}
