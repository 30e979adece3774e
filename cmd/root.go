package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gadget_tui/internal"
	"gadget_tui/internal/config"
	"gadget_tui/internal/logger"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// journalPath overrides the configured journal file.
	journalPath string

	// rootCmd runs the gadget page.
	rootCmd = &cobra.Command{
		Use:   "gadgets",
		Short: "Countdown, stopwatch, clock and alarms in the terminal.",
		Long: `Runs a terminal page with four gadgets: a countdown timer, a stopwatch
with laps, a live clock and a list of alarms.

Settings are read from a YAML file when it exists. Timer expiries, laps and
alarms are written to a sqlite journal that can be listed with "gadgets history".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, closeLog, err := setupLogger(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			return run(ctx, cfg)
		},
	}
)

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "path to the sqlite journal (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")

	rootCmd.AddCommand(historyCmd)
}

// loadConfig reads the settings file and applies flag overrides. A missing
// file is only an error when --config was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOrDefault(configPath)
	}
	if err != nil {
		return nil, err
	}

	if journalPath != "" {
		cfg.JournalPath = journalPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogger(ctx context.Context, cfg *config.Config) (context.Context, func() error, error) {
	level, _ := logger.ParseLogLevel(cfg.LogLevel)

	l, closeFn, err := logger.NewFile(cfg.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLogger(l)

	return logger.ToContext(ctx, l), closeFn, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	m, err := internal.NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	logger.InfoKV(ctx, "starting gadgets", "journal", cfg.JournalPath, "alert_duration", cfg.AlertDuration)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Infof(ctx, "gadgets stopped")

	return nil
}
