package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Diagram name", cfg.DiagramName)
	assert.Equal(t, 10, cfg.Measure)
	assert.Equal(t, 2026, cfg.Year)
	assert.Equal(t, "data/life_directions.json", cfg.DataPath)
	assert.Equal(t, "images/life_directions", cfg.OutputDir)
	assert.Equal(t, FontSizes{Title: 16, Subtitle: 14, AxisLabel: 12, TickLabel: 16, StatsText: 16, BarValue: 14}, cfg.FontSizes)
	assert.Equal(t, AlignUnion, cfg.Alignment)
	assert.Equal(t, BoundsDisplay, cfg.ScoreBounds)
	assert.Equal(t, []string{FormatPNG}, cfg.Formats)

	adjusted, err := cfg.Validate()
	assert.NoError(t, err)
	assert.Empty(t, adjusted)
}

func TestLoadFromPath(t *testing.T) {
	t.Run("json merges over defaults", func(t *testing.T) {
		path := writeFile(t, "chart_config.json", `{
			"diagram_name": "Life directions",
			"measure": 5,
			"font_sizes": {"title": 20}
		}`)

		cfg, adjusted, err := LoadFromPath(path)
		require.NoError(t, err)
		assert.Empty(t, adjusted)
		assert.Equal(t, "Life directions", cfg.DiagramName)
		assert.Equal(t, 5, cfg.Measure)
		assert.Equal(t, 20, cfg.FontSizes.Title)
		assert.Equal(t, 14, cfg.FontSizes.Subtitle)
		assert.Equal(t, 2026, cfg.Year)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "chart_config.yaml", "diagram_name: Balance\nyear: 2025\nformats: [png, xlsx]\nalignment: strict\n")

		cfg, _, err := LoadFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "Balance", cfg.DiagramName)
		assert.Equal(t, 2025, cfg.Year)
		assert.Equal(t, []string{FormatPNG, FormatXLSX}, cfg.Formats)
		assert.Equal(t, AlignStrict, cfg.Alignment)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg, _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, "chart_config.json", `{"measure": "ten"`)

		cfg, _, err := LoadFromPath(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid enumeration", func(t *testing.T) {
		path := writeFile(t, "chart_config.json", `{"alignment": "sideways"}`)

		cfg, _, err := LoadFromPath(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ChartConfig)
		wantErr     bool
		errorString string
		check       func(t *testing.T, cfg *ChartConfig, adjusted []string)
	}{
		{
			name:   "negative measure coerced",
			mutate: func(c *ChartConfig) { c.Measure = -3 },
			check: func(t *testing.T, cfg *ChartConfig, adjusted []string) {
				assert.Equal(t, 10, cfg.Measure)
				assert.Contains(t, adjusted, "measure -3 is not positive, using 10")
			},
		},
		{
			name:   "zero font size coerced",
			mutate: func(c *ChartConfig) { c.FontSizes.BarValue = 0 },
			check: func(t *testing.T, cfg *ChartConfig, adjusted []string) {
				assert.Equal(t, 14, cfg.FontSizes.BarValue)
				assert.Len(t, adjusted, 1)
			},
		},
		{
			name:   "formats normalised and deduplicated",
			mutate: func(c *ChartConfig) { c.Formats = []string{" PNG", "html", "png"} },
			check: func(t *testing.T, cfg *ChartConfig, adjusted []string) {
				assert.Equal(t, []string{"png", "html"}, cfg.Formats)
			},
		},
		{
			name:        "unknown format",
			mutate:      func(c *ChartConfig) { c.Formats = []string{"gif"} },
			wantErr:     true,
			errorString: `invalid configuration: format must be one of [png html xlsx], got "gif"`,
		},
		{
			name:        "unknown score bounds",
			mutate:      func(c *ChartConfig) { c.ScoreBounds = "hard" },
			wantErr:     true,
			errorString: `invalid configuration: score_bounds must be one of [display strict], got "hard"`,
		},
		{
			name:   "empty enumerations take defaults",
			mutate: func(c *ChartConfig) { c.Alignment = ""; c.ScoreBounds = ""; c.Formats = nil },
			check: func(t *testing.T, cfg *ChartConfig, adjusted []string) {
				assert.Equal(t, AlignUnion, cfg.Alignment)
				assert.Equal(t, BoundsDisplay, cfg.ScoreBounds)
				assert.Equal(t, []string{FormatPNG}, cfg.Formats)
			},
		},
		{
			name:   "pattern without year verb",
			mutate: func(c *ChartConfig) { c.AlternateDataPattern = "data.json" },
			check: func(t *testing.T, cfg *ChartConfig, adjusted []string) {
				assert.Equal(t, "life_data_%d.json", cfg.AlternateDataPattern)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			adjusted, err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Equal(t, tt.errorString, err.Error())
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg, adjusted)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("WINDROSE_DATA_PATH", "/tmp/data.json")
	t.Setenv("WINDROSE_OUTPUT_DIR", "/tmp/out")
	t.Setenv("WINDROSE_YEAR", "2024")
	t.Setenv("WINDROSE_MEASURE", "ten")
	t.Setenv("WINDROSE_FORMATS", "png, html")

	cfg := DefaultConfig()
	adjusted := cfg.ApplyEnv()

	assert.Equal(t, "/tmp/data.json", cfg.DataPath)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, 10, cfg.Measure)
	assert.Equal(t, []string{"png", "html"}, cfg.Formats)
	assert.Equal(t, []string{`ignoring WINDROSE_MEASURE="ten": not a number`}, adjusted)
}

func TestLoadFallsBackWithWarning(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	cfg := Load(filepath.Join(t.TempDir(), "missing.json"), logger)

	assert.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, 1, logs.FilterMessage("config not found, using defaults").Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestLoadRejectedOverrideKeepsFileValues(t *testing.T) {
	path := writeFile(t, "chart_config.json", `{"data_path": "mine.json", "diagram_name": "Mine"}`)
	t.Setenv("WINDROSE_FORMATS", "gif")
	t.Setenv("WINDROSE_OUTPUT_DIR", "/tmp/elsewhere")

	core, logs := observer.New(zapcore.InfoLevel)
	cfg := Load(path, zap.New(core))

	assert.Equal(t, "mine.json", cfg.DataPath)
	assert.Equal(t, "Mine", cfg.DiagramName)
	assert.Equal(t, DefaultConfig().OutputDir, cfg.OutputDir)
	assert.Equal(t, []string{FormatPNG}, cfg.Formats)

	rejected := logs.FilterMessage("environment override rejected, keeping file values").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.WarnLevel, rejected[0].Level)
}

func TestAlternateDataPath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("data", "life_data_2025.json"), cfg.AlternateDataPath(2025))
}

func TestSetupLoggerOnce(t *testing.T) {
	first, err := SetupLogger(&Runtime{AppEnv: "development"})
	require.NoError(t, err)
	second, err := SetupLogger(&Runtime{AppEnv: "production"})
	require.NoError(t, err)

	assert.Same(t, first, second)
}
