package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/markov/internal/config"
	"github.com/katalvlaran/markov/internal/logging"
	"github.com/katalvlaran/markov/metrics"
)

// version is overridden at link time.
var version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgPath  string
	logLevel string
	metrics  bool

	cfg   config.Config
	log   *slog.Logger
	reg   *prometheus.Registry
	runID string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:     "markov",
		Short:   "Generate random walks over weighted transition models",
		Long:    `markov learns transition counts from a text corpus or a snakes-and-ladders board and prints random walks that follow them.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics {
				return nil
			}
			return metrics.WriteText(cmd.ErrOrStderr(), a.reg)
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Config file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Dump Prometheus metrics to stderr on exit")

	rootCmd.AddCommand(newTweetsCmd(a), newSnakesCmd(a))

	return rootCmd
}

// setup resolves config, logger, metrics registry and run id.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.cfgPath != "" {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	level, err := a.cfg.Level()
	if err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.log = logging.New(cmd.ErrOrStderr(), level)
	a.reg = prometheus.NewRegistry()

	return nil
}

// collector registers the metrics of one model on the run registry.
func (a *app) collector(model string) (*metrics.Collector, error) {
	return metrics.New(a.reg, model)
}

// closeModel tears a model down at the end of a run. Close only fails on a
// model that is already closed, so the error is logged, not returned.
func closeModel(log *slog.Logger, m interface{ Close() error }) {
	if err := m.Close(); err != nil {
		log.Debug("close model", "error", err)
	}
}

func parseSeed(s string) (int64, error) {
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return seed, nil
}

// parseCount parses a non-negative integer argument.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must not be negative", name, n)
	}
	return n, nil
}
