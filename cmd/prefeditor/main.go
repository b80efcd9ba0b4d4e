package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"companion/internal/platform/config"
	"companion/internal/platform/logger"
	"companion/internal/platform/metrics"
)

// app carries what every subcommand needs.
type app struct {
	cfg     config.Editor
	log     *slog.Logger
	metrics *metrics.Metrics
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "prefeditor",
		Short:         "Edit dosing preferences with guardrails",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSectionsCmd(a), newSetCmd(a), newBolusCmd(a), newNightscoutCmd(a))
	return root
}

// main loads config, builds logging and metrics, and hands off to cobra.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	a := &app{
		cfg:     cfg,
		log:     logger.New(os.Stderr, cfg.LogFormat, cfg.LogLevel),
		metrics: metrics.New(prometheus.DefaultRegisterer),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		a.log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
