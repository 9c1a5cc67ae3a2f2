package config

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Runtime holds process settings that come from the environment only.
type Runtime struct {
	AppEnv     string
	ConfigPath string
}

// LoadFromEnv loads runtime settings from environment variables.
func LoadFromEnv() *Runtime {
	return &Runtime{
		AppEnv:     getEnv("APP_ENV", "development"),
		ConfigPath: getEnv("WINDROSE_CONFIG", "config/chart_config.json"),
	}
}

// Load reads the chart config at path, applies environment overrides and
// falls back to the defaults when the file is absent or invalid. Overrides
// that fail validation are dropped as a whole and the file values stay.
func Load(path string, logger *zap.Logger) *ChartConfig {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, adjusted, err := LoadFromPath(path)
	switch {
	case err == nil:
		logger.Info("chart config loaded", zap.String("path", path))
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("config not found, using defaults", zap.String("path", path))
	default:
		logger.Warn("config invalid, using defaults", zap.String("path", path), zap.Error(err))
	}

	base := *cfg
	adjusted = append(adjusted, cfg.ApplyEnv()...)
	if more, err := cfg.Validate(); err != nil {
		logger.Warn("environment override rejected, keeping file values", zap.Error(err))
		*cfg = base
	} else {
		adjusted = append(adjusted, more...)
	}

	for _, msg := range adjusted {
		logger.Warn("config value adjusted", zap.String("detail", msg))
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
