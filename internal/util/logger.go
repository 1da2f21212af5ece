// internal/util/logger.go
package util

import (
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger backed by a zap core.
// Production builds emit JSON; anything else gets the colored console encoder.
func InitLogger(env string) {
	var zapLogger *zap.Logger

	if env == "production" {
		zapLogger = zap.Must(zap.NewProduction())
	} else {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(config.Build())
	}

	logger = slog.New(zapslog.NewHandler(zapLogger.Core()))
	slog.SetDefault(logger)
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger("development")
	}
	return logger
}
