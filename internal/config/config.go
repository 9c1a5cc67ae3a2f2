package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Alignment selects how a multi-month chart derives its category axis.
type Alignment string

const (
	// AlignUnion plots the union of all categories, missing scores read as 0.
	AlignUnion Alignment = "union"
	// AlignFirst plots the first month's categories, missing scores read as 0.
	AlignFirst Alignment = "first"
	// AlignStrict plots the first month's categories and fails on a missing one.
	AlignStrict Alignment = "strict"
)

// ScoreBounds selects whether measure bounds the input scores.
type ScoreBounds string

const (
	// BoundsDisplay uses measure for axes only.
	BoundsDisplay ScoreBounds = "display"
	// BoundsStrict rejects datasets holding scores outside [0, measure].
	BoundsStrict ScoreBounds = "strict"
)

// Output formats understood by the renderers.
const (
	FormatPNG  = "png"
	FormatHTML = "html"
	FormatXLSX = "xlsx"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatPNG, FormatHTML, FormatXLSX}

// ErrInvalidConfig is returned when a value cannot be coerced into range.
var ErrInvalidConfig = errors.New("invalid configuration")

// FontSizes holds font sizes in points per text role.
type FontSizes struct {
	Title     int `json:"title" yaml:"title"`
	Subtitle  int `json:"subtitle" yaml:"subtitle"`
	AxisLabel int `json:"axis_label" yaml:"axis_label"`
	TickLabel int `json:"tick_label" yaml:"tick_label"`
	StatsText int `json:"stats_text" yaml:"stats_text"`
	BarValue  int `json:"bar_value" yaml:"bar_value"`
}

// ChartConfig holds all settings of one rendering session.
type ChartConfig struct {
	DiagramName          string      `json:"diagram_name" yaml:"diagram_name"`
	Measure              int         `json:"measure" yaml:"measure"`
	Year                 int         `json:"year" yaml:"year"`
	DataPath             string      `json:"data_path" yaml:"data_path"`
	OutputDir            string      `json:"output_dir" yaml:"output_dir"`
	FontSizes            FontSizes   `json:"font_sizes" yaml:"font_sizes"`
	Alignment            Alignment   `json:"alignment" yaml:"alignment"`
	ScoreBounds          ScoreBounds `json:"score_bounds" yaml:"score_bounds"`
	Formats              []string    `json:"formats" yaml:"formats"`
	AlternateDataPattern string      `json:"alternate_data_pattern" yaml:"alternate_data_pattern"`
}

// DefaultFontSizes returns the font sizes used when none are configured.
func DefaultFontSizes() FontSizes {
	return FontSizes{
		Title:     16,
		Subtitle:  14,
		AxisLabel: 12,
		TickLabel: 16,
		StatsText: 16,
		BarValue:  14,
	}
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *ChartConfig {
	return &ChartConfig{
		DiagramName:          "Diagram name",
		Measure:              10,
		Year:                 2026,
		DataPath:             "data/life_directions.json",
		OutputDir:            "images/life_directions",
		FontSizes:            DefaultFontSizes(),
		Alignment:            AlignUnion,
		ScoreBounds:          BoundsDisplay,
		Formats:              []string{FormatPNG},
		AlternateDataPattern: "life_data_%d.json",
	}
}

// LoadFromPath reads a JSON or YAML config file on top of the defaults and
// validates the result. A missing file yields the defaults and an error
// wrapping os.ErrNotExist.
func LoadFromPath(path string) (*ChartConfig, []string, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, loaded)
	default:
		err = json.Unmarshal(data, loaded)
	}
	if err != nil {
		return cfg, nil, fmt.Errorf("parsing config file: %w", err)
	}

	adjusted, err := loaded.Validate()
	if err != nil {
		return cfg, nil, err
	}
	return loaded, adjusted, nil
}

// ApplyEnv overrides file values with WINDROSE_* environment variables.
func (c *ChartConfig) ApplyEnv() []string {
	var adjusted []string

	if v := os.Getenv("WINDROSE_DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("WINDROSE_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("WINDROSE_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.Year = year
		} else {
			adjusted = append(adjusted, fmt.Sprintf("ignoring WINDROSE_YEAR=%q: not a number", v))
		}
	}
	if v := os.Getenv("WINDROSE_MEASURE"); v != "" {
		if measure, err := strconv.Atoi(v); err == nil {
			c.Measure = measure
		} else {
			adjusted = append(adjusted, fmt.Sprintf("ignoring WINDROSE_MEASURE=%q: not a number", v))
		}
	}
	if v := os.Getenv("WINDROSE_FORMATS"); v != "" {
		c.Formats = splitList(v)
	}
	return adjusted
}

// Validate coerces out-of-range values to their defaults and reports each
// coercion. Values that have no sensible default produce ErrInvalidConfig.
func (c *ChartConfig) Validate() ([]string, error) {
	def := DefaultConfig()
	var adjusted []string

	if c.Measure <= 0 {
		adjusted = append(adjusted, fmt.Sprintf("measure %d is not positive, using %d", c.Measure, def.Measure))
		c.Measure = def.Measure
	}
	if c.Year < 0 {
		adjusted = append(adjusted, fmt.Sprintf("year %d is negative, omitting it from titles", c.Year))
		c.Year = 0
	}
	if strings.TrimSpace(c.DataPath) == "" {
		adjusted = append(adjusted, fmt.Sprintf("data_path is empty, using %s", def.DataPath))
		c.DataPath = def.DataPath
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		adjusted = append(adjusted, fmt.Sprintf("output_dir is empty, using %s", def.OutputDir))
		c.OutputDir = def.OutputDir
	}
	adjusted = append(adjusted, c.FontSizes.coerce(def.FontSizes)...)

	if c.Alignment == "" {
		c.Alignment = def.Alignment
	}
	switch c.Alignment {
	case AlignUnion, AlignFirst, AlignStrict:
	default:
		return adjusted, fmt.Errorf("%w: alignment must be one of [union first strict], got %q",
			ErrInvalidConfig, c.Alignment)
	}

	if c.ScoreBounds == "" {
		c.ScoreBounds = def.ScoreBounds
	}
	switch c.ScoreBounds {
	case BoundsDisplay, BoundsStrict:
	default:
		return adjusted, fmt.Errorf("%w: score_bounds must be one of [display strict], got %q",
			ErrInvalidConfig, c.ScoreBounds)
	}

	if len(c.Formats) == 0 {
		c.Formats = def.Formats
	}
	formats := make([]string, 0, len(c.Formats))
	seen := map[string]bool{}
	for _, f := range c.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !isValidFormat(f) {
			return adjusted, fmt.Errorf("%w: format must be one of %v, got %q",
				ErrInvalidConfig, ValidFormats, f)
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	c.Formats = formats

	if !strings.Contains(c.AlternateDataPattern, "%d") {
		adjusted = append(adjusted, fmt.Sprintf("alternate_data_pattern %q has no %%d verb, using %s",
			c.AlternateDataPattern, def.AlternateDataPattern))
		c.AlternateDataPattern = def.AlternateDataPattern
	}

	return adjusted, nil
}

func (f *FontSizes) coerce(def FontSizes) []string {
	var adjusted []string
	fix := func(name string, v *int, fallback int) {
		if *v <= 0 {
			adjusted = append(adjusted, fmt.Sprintf("font_sizes.%s %d is not positive, using %d", name, *v, fallback))
			*v = fallback
		}
	}
	fix("title", &f.Title, def.Title)
	fix("subtitle", &f.Subtitle, def.Subtitle)
	fix("axis_label", &f.AxisLabel, def.AxisLabel)
	fix("tick_label", &f.TickLabel, def.TickLabel)
	fix("stats_text", &f.StatsText, def.StatsText)
	fix("bar_value", &f.BarValue, def.BarValue)
	return adjusted
}

// AlternateDataPath returns the path of the data file for year, next to DataPath.
func (c *ChartConfig) AlternateDataPath(year int) string {
	return filepath.Join(filepath.Dir(c.DataPath), fmt.Sprintf(c.AlternateDataPattern, year))
}

func isValidFormat(f string) bool {
	for _, v := range ValidFormats {
		if f == v {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
