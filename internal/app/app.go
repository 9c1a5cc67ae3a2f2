package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/godilite/windrose/internal/config"
	"github.com/godilite/windrose/internal/render"
	"github.com/godilite/windrose/internal/repository"
	"github.com/godilite/windrose/internal/service"
)

// Artifact base names, one per view.
const (
	MonthArtifact      = "current_month"
	ComparisonArtifact = "month_comparison"
	SummaryArtifact    = "yearly_summary"
)

// Request selects the views of one run. The zero Request renders the last
// month, a comparison of all months and the yearly summary.
type Request struct {
	Month   string
	Compare []string
	Summary bool
}

func (r Request) isZero() bool {
	return r.Month == "" && len(r.Compare) == 0 && !r.Summary
}

// Result lists the files written by a run and the views that had no data.
type Result struct {
	Written []string
	Skipped []string
}

type App struct {
	logger    *zap.Logger
	cfg       *config.ChartConfig
	tracker   *service.Tracker
	renderers []render.Renderer
}

// NewApp loads the dataset named by cfg and prepares one renderer per
// configured format.
func NewApp(ctx context.Context, cfg *config.ChartConfig, logger *zap.Logger) (*App, error) {
	return newApp(ctx, cfg, repository.NewFileLoader(), logger)
}

func newApp(ctx context.Context, cfg *config.ChartConfig, loader service.DatasetLoader, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	renderers, err := render.ForFormats(cfg.Formats)
	if err != nil {
		return nil, fmt.Errorf("renderer init failed: %w", err)
	}

	tracker := service.NewTracker(ctx, loader, cfg, logger)

	return &App{
		logger:    logger,
		cfg:       cfg,
		tracker:   tracker,
		renderers: renderers,
	}, nil
}

// Months lists the months with data for year; zero means the loaded year.
func (a *App) Months(ctx context.Context, year int) []string {
	return a.tracker.AvailableMonths(ctx, year)
}

type view struct {
	name string
	draw func(r render.Renderer, w io.Writer) error
}

// Run builds the requested views and writes every view in every configured
// format under the output directory. Views without data are skipped. A view
// that fails to build is skipped too and its error returned once the others
// are written.
func (a *App) Run(ctx context.Context, req Request) (Result, error) {
	if req.isZero() {
		months := a.tracker.Dataset().Months()
		if len(months) > 0 {
			req.Month = months[len(months)-1]
		}
		req.Compare = months
		req.Summary = true
	}

	views, skipped, viewErr := a.views(req)
	written, err := a.write(ctx, views)
	return Result{Written: written, Skipped: skipped}, errors.Join(viewErr, err)
}

func (a *App) views(req Request) ([]view, []string, error) {
	var (
		views   []view
		skipped []string
		errs    []error
	)

	if req.Month != "" {
		radar, ok := a.tracker.RenderMonth(req.Month)
		if ok {
			views = append(views, view{MonthArtifact, func(r render.Renderer, w io.Writer) error {
				return r.Radar(w, radar)
			}})
		} else {
			skipped = append(skipped, MonthArtifact)
		}
	} else {
		skipped = append(skipped, MonthArtifact)
	}

	if len(req.Compare) > 0 {
		comparison, ok, err := a.tracker.RenderComparison(req.Compare)
		switch {
		case err != nil:
			a.skip(ComparisonArtifact, err)
			errs = append(errs, err)
			skipped = append(skipped, ComparisonArtifact)
		case ok:
			views = append(views, view{ComparisonArtifact, func(r render.Renderer, w io.Writer) error {
				return r.Comparison(w, comparison)
			}})
		default:
			skipped = append(skipped, ComparisonArtifact)
		}
	} else {
		skipped = append(skipped, ComparisonArtifact)
	}

	if req.Summary {
		summary, ok, err := a.tracker.RenderYearlySummary()
		switch {
		case err != nil:
			a.skip(SummaryArtifact, err)
			errs = append(errs, err)
			skipped = append(skipped, SummaryArtifact)
		case ok:
			views = append(views, view{SummaryArtifact, func(r render.Renderer, w io.Writer) error {
				return r.Summary(w, summary)
			}})
		default:
			skipped = append(skipped, SummaryArtifact)
		}
	}

	return views, skipped, errors.Join(errs...)
}

func (a *App) skip(name string, err error) {
	a.logger.Warn("chart skipped", zap.String("view", name), zap.Error(err))
}

// write renders each artifact into memory and only then creates its file, so
// a failing renderer leaves no partial output.
func (a *App) write(ctx context.Context, views []view) ([]string, error) {
	if len(views) == 0 || len(a.renderers) == 0 {
		return []string{}, nil
	}
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var (
		mu      sync.Mutex
		written = []string{}
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range views {
		for _, r := range a.renderers {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				var buf bytes.Buffer
				if err := v.draw(r, &buf); err != nil {
					return fmt.Errorf("render %s as %s: %w", v.name, r.Format(), err)
				}

				path := filepath.Join(a.cfg.OutputDir, v.name+"."+r.Format())
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				a.logger.Info("chart saved", zap.String("path", path))

				mu.Lock()
				written = append(written, path)
				mu.Unlock()
				return nil
			})
		}
	}

	err := g.Wait()
	sort.Strings(written)
	return written, err
}
