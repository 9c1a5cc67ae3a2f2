package config

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu         sync.Mutex
	loggerConfigured bool
	processLogger    *zap.Logger
)

// NewLogger creates a new Zap logger based on the runtime settings.
func NewLogger(rt *Runtime) (*zap.Logger, error) {
	if rt != nil && rt.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// SetupLogger builds the process logger on the first call and returns the
// same logger on every later call.
func SetupLogger(rt *Runtime) (*zap.Logger, error) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if loggerConfigured {
		return processLogger, nil
	}

	logger, err := NewLogger(rt)
	if err != nil {
		return nil, err
	}
	processLogger = logger.Named("windrose")
	loggerConfigured = true
	return processLogger, nil
}
