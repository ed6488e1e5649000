package cerror

import (
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	error            `json:"-"`
	HttpStatusCode   int             `json:"httpStatus"`
	LogMessage       string          `json:"message"`
	LogSeverity      zapcore.Level   `json:"-"`
	LogFields        []zapcore.Field `json:"-"`
	ValidationErrors []string        `json:"errors,omitempty"`
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetValidationErrors(validationErrors []string) *CustomError {
	cerr.ValidationErrors = validationErrors
	return cerr
}
