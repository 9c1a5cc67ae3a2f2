package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/windrose/internal/app"
	"github.com/godilite/windrose/internal/config"
)

func setup(ctx context.Context, rt *config.Runtime, formats []string) (*app.App, *zap.Logger, error) {
	logger, err := config.SetupLogger(rt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg := config.Load(rt.ConfigPath, logger)
	if len(formats) > 0 {
		cfg.Formats = formats
		adjusted, err := cfg.Validate()
		if err != nil {
			return nil, logger, err
		}
		for _, msg := range adjusted {
			logger.Warn("config value adjusted", zap.String("detail", msg))
		}
	}

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		return nil, logger, fmt.Errorf("failed to initialize application: %w", err)
	}
	return a, logger, nil
}

func renderCmd(rt *config.Runtime) *cobra.Command {
	var (
		req     app.Request
		formats []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the month, comparison and summary charts",
		Long: "Render the requested charts into the output directory. With no view flags " +
			"the last month, a comparison of all months and the yearly summary are rendered.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, logger, err := setup(ctx, rt, formats)
			if logger != nil {
				defer logger.Sync()
			}
			if err != nil {
				return err
			}

			res, err := a.Run(ctx, req)
			for _, path := range res.Written {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			if err != nil {
				logger.Error("rendering failed", zap.Error(err))
				return err
			}
			if len(res.Skipped) > 0 {
				logger.Info("views skipped", zap.Strings("views", res.Skipped))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Month, "month", "", "render the radar chart of this month")
	cmd.Flags().StringSliceVar(&req.Compare, "compare", nil, "compare these months, comma separated")
	cmd.Flags().BoolVar(&req.Summary, "summary", false, "render the yearly summary")
	cmd.Flags().StringSliceVar(&formats, "format", nil, "output formats: png, html, xlsx")
	return cmd
}

func monthsCmd(rt *config.Runtime) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "months",
		Short: "List the months with data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, logger, err := setup(ctx, rt, nil)
			if logger != nil {
				defer logger.Sync()
			}
			if err != nil {
				return err
			}

			for _, m := range a.Months(ctx, year) {
				fmt.Fprintln(cmd.OutOrStdout(), m)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to list, defaults to the configured year")
	return cmd
}
