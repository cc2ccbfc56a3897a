package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var global = zap.NewNop()

// SetupLogger builds the application logger for the environment and installs
// it as the package global used across handlers and services.
func SetupLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case envLocal, envDev:
		logger, err = zap.NewDevelopment()
	case envProd:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	global = logger
	return logger
}

func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
