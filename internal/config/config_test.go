package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks defaults and rejected values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Validate(nil), errConfigIsNotSet)

	// Empty settings get defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, Default(), cfg)

	// Unknown level.
	cfg = &Config{LogLevel: "chatty"}
	require.ErrorIs(t, Validate(cfg), errUnknownLogLevel)

	// Negative alert duration.
	cfg = &Config{AlertDuration: -time.Second}
	require.ErrorIs(t, Validate(cfg), errNegativeAlertDuration)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gadgets.yaml")

	cfg := &Config{
		LogLevel:      "debug",
		LogFile:       "gadgets.log",
		JournalPath:   "events.db",
		ClockLayout:   "15h04",
		AlertDuration: 10 * time.Second,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_PartialFile keeps defaults for keys missing from the file.
func TestLoad_PartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gadgets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alert_duration: 3s\n"), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.AlertDuration)
	require.Equal(t, DefaultJournalFilename, cfg.JournalPath)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestLoadOrDefault falls back to defaults only for a missing file.
func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("log_level: [\n"), DefaultFilePermissions))

	_, err = LoadOrDefault(broken)
	require.Error(t, err)

	require.Error(t, Save("", nil))
}
