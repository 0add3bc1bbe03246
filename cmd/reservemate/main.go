// Package main provides the reservemate binary entry point.
// ReserveMate manages restaurant reservations from the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/reservemate/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "reservemate"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	dataFile    string
	logLevel    string
	watch       bool
	metricsFile string
}

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Restaurant reservation manager",
		Long: `ReserveMate keeps track of restaurant reservations.

Run without arguments for an interactive session, or use "exec" to run a
single command. Reservations are saved to a JSON data file after every
change.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *App) error {
				if err := app.Start(ctx); err != nil {
					return err
				}
				return app.RunREPL(ctx)
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVar(&flags.dataFile, "data", "", "Data file path (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&flags.watch, "watch", false, "Reload when the data file is edited externally")
	pf.StringVar(&flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(&cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Execute a single command",
		Example: `  reservemate exec list
  reservemate exec "add n/Amy Bee p/85355255 e/amy@gmail.com d/2 t/2026-12-12 1800"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *App) error {
				return app.RunOnce(ctx, strings.Join(args, " "))
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "import PATTERN...",
		Short:   "Merge reservations from other data files",
		Example: `  reservemate import "backups/**/*.json"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, flags, func(ctx context.Context, app *App) error {
				return app.Import(args)
			})
		},
	})

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// withApp loads configuration, sets up logging and runs fn with a ready App.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(context.Context, *App) error) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := setupLogging(cfg.Log.Level)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := NewApp(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout())
	defer app.Shutdown()

	return fn(ctx, app)
}

// loadConfig layers command-line flags over the loaded configuration.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	// Config loading logs before the level is known
	bootLogger := setupLogging(firstNonEmpty(flags.logLevel, os.Getenv(config.EnvLogLevel), "warn"))

	loader := config.NewLoader(bootLogger)
	if flags.configPath != "" {
		loader.WithConfigFile(flags.configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("data") {
		cfg.Storage.DataFile = flags.dataFile
	}
	if pf.Changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if pf.Changed("watch") {
		cfg.Watch.Enabled = flags.watch
	}
	if pf.Changed("metrics-file") {
		cfg.Metrics.File = flags.metricsFile
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging configures the default logger for the given level.
func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
