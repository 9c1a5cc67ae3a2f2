package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/godilite/windrose/internal/config"
)

func main() {
	_ = godotenv.Load(".env")

	rt := config.LoadFromEnv()

	rootCmd := &cobra.Command{
		Use:          "windrose",
		Short:        "Render life-balance charts from monthly category ratings",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&rt.ConfigPath, "config", rt.ConfigPath, "chart config file (JSON or YAML)")

	rootCmd.AddCommand(renderCmd(rt))
	rootCmd.AddCommand(monthsCmd(rt))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
