package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the production logger the whole service shares.
func NewLogger() *zap.SugaredLogger {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	return log.Sugar()
}
