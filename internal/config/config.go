package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"gadget_tui/internal/logger"
)

// Config holds the runtime settings of the gadget page.
type Config struct {
	// LogLevel is the minimum zap level written to LogFile.
	LogLevel string `yaml:"log_level"`
	// LogFile receives the logs. The terminal belongs to the UI, so an
	// empty value disables logging.
	LogFile string `yaml:"log_file"`
	// JournalPath is the sqlite file gadget events are written to.
	JournalPath string `yaml:"journal_path"`
	// ClockLayout is the Go time layout of the live clock.
	ClockLayout string `yaml:"clock_layout"`
	// AlertDuration is how long an alarm notification stays visible.
	AlertDuration time.Duration `yaml:"alert_duration"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "gadgets.yaml"

	// DefaultJournalFilename is the default sqlite journal.
	DefaultJournalFilename = "gadgets.db"

	DefaultLogLevel      = "info"
	DefaultClockLayout   = "15:04:05"
	DefaultAlertDuration = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownLogLevel is returned for levels zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
	// errNegativeAlertDuration is returned for alert durations below zero.
	errNegativeAlertDuration = errors.New("alert duration must not be negative")
)

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		JournalPath:   DefaultJournalFilename,
		ClockLayout:   DefaultClockLayout,
		AlertDuration: DefaultAlertDuration,
	}
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the settings and fills in defaults for empty fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	if cfg.AlertDuration < 0 {
		return errNegativeAlertDuration
	}

	if cfg.AlertDuration == 0 {
		cfg.AlertDuration = DefaultAlertDuration
	}

	if cfg.JournalPath == "" {
		cfg.JournalPath = DefaultJournalFilename
	}

	if cfg.ClockLayout == "" {
		cfg.ClockLayout = DefaultClockLayout
	}

	return nil
}
