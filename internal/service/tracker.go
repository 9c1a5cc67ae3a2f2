package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/godilite/windrose/internal/chart"
	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/dataset"
	"go.uber.org/zap"
)

// Tracker owns one year of ratings and builds charts over it.
type Tracker struct {
	loader DatasetLoader
	cfg    *config.ChartConfig
	logger *zap.Logger
	year   int
	data   *dataset.Dataset
}

// NewTracker creates a Tracker and loads its dataset from cfg.DataPath.
func NewTracker(ctx context.Context, loader DatasetLoader, cfg *config.ChartConfig, logger *zap.Logger) *Tracker {
	if loader == nil {
		panic("loader must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	t := &Tracker{
		loader: loader,
		cfg:    cfg,
		logger: logger.Named("tracker"),
		year:   cfg.Year,
	}
	t.data = t.Load(ctx)
	return t
}

// Year returns the year of the loaded data.
func (t *Tracker) Year() int {
	return t.year
}

// Dataset returns the loaded dataset.
func (t *Tracker) Dataset() *dataset.Dataset {
	return t.data
}

// Load reads the configured data file. Any failure is logged and yields an
// empty dataset.
func (t *Tracker) Load(ctx context.Context) *dataset.Dataset {
	d, err := t.read(ctx, t.cfg.DataPath)
	if err != nil {
		t.logger.Error("error during loading data",
			zap.String("path", t.cfg.DataPath),
			zap.Error(err))
		return dataset.Empty()
	}

	t.logger.Info("data loaded",
		zap.String("path", t.cfg.DataPath),
		zap.Int("months", d.Len()))
	return d
}

func (t *Tracker) read(ctx context.Context, path string) (*dataset.Dataset, error) {
	d, err := t.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if d == nil {
		d = dataset.Empty()
	}
	if t.cfg.ScoreBounds == config.BoundsStrict {
		if err := d.Validate(t.cfg.Measure); err != nil {
			return nil, fmt.Errorf("validate %s: %w", path, err)
		}
	}
	return d, nil
}

// AvailableMonths returns the months with data. A non-zero year other than
// the loaded one is looked up in its own data file; no file means no months.
func (t *Tracker) AvailableMonths(ctx context.Context, year int) []string {
	if year == 0 || year == t.year {
		return t.data.Months()
	}

	path := t.cfg.AlternateDataPath(year)
	d, err := t.read(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.logger.Debug("no data file for year", zap.Int("year", year), zap.String("path", path))
		} else {
			t.logger.Warn("data file for year is unreadable",
				zap.Int("year", year),
				zap.String("path", path),
				zap.Error(err))
		}
		return []string{}
	}
	return d.Months()
}

// RenderMonth builds the radar chart of month. It reports false when the
// month has no data.
func (t *Tracker) RenderMonth(month string) (chart.Radar, bool) {
	if !t.data.Has(month) {
		t.logger.Warn("data for month is not found", zap.String("month", month))
		return chart.Radar{}, false
	}
	scores, _ := t.data.Month(month)
	return chart.BuildRadar(month, scores, t.year, t.cfg), true
}

// RenderComparison builds the grouped-bar chart of months in the given
// order. It reports false when any month has no data.
func (t *Tracker) RenderComparison(months []string) (chart.Comparison, bool, error) {
	selected, missing := t.data.Select(months)
	if len(missing) > 0 {
		t.logger.Warn("data for months is not found", zap.Strings("missing", missing))
		return chart.Comparison{}, false, nil
	}
	if len(selected) == 0 {
		t.logger.Warn("no months requested for comparison")
		return chart.Comparison{}, false, nil
	}

	c, err := chart.BuildComparison(selected, t.year, t.cfg)
	if err != nil {
		return chart.Comparison{}, false, err
	}
	return c, true, nil
}

// RenderYearlySummary builds the heatmap and trend panels over every month.
// It reports false when the dataset is empty.
func (t *Tracker) RenderYearlySummary() (chart.Summary, bool, error) {
	if t.data.IsEmpty() {
		t.logger.Warn("no data for plotting")
		return chart.Summary{}, false, nil
	}

	s, err := chart.BuildSummary(t.data.All(), t.year, t.cfg)
	if err != nil {
		return chart.Summary{}, false, err
	}
	return s, true, nil
}
