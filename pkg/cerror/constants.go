package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

var (
	ErrorBadRequest = &CustomError{
		HttpStatusCode: fiber.StatusBadRequest,
		LogMessage:     "malformed request body or query parameter",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorInvalidCredentials = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "invalid email or password",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorAccountInactive = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "account is not active",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorAccountGone = &CustomError{
		HttpStatusCode: fiber.StatusUnauthorized,
		LogMessage:     "account no longer exists",
		LogSeverity:    zapcore.WarnLevel,
	}

	ErrorGenerateTokens = &CustomError{
		HttpStatusCode: fiber.StatusInternalServerError,
		LogMessage:     "error occurred while generate token pair",
		LogSeverity:    zapcore.ErrorLevel,
	}
)
