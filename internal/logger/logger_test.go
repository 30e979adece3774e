package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		"info":   zapcore.InfoLevel,
		" WARN ": zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"panic":  zapcore.PanicLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContext stores a logger in a context and reads it back.
func TestContext(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	var buf bytes.Buffer
	l := New(zapcore.DebugLevel, &buf)
	ctx := WithName(ToContext(context.Background(), l), "gadgets")

	InfoKV(ctx, "alarm fired", "message", "Réveil")
	Debugf(ctx, "tick %d", 3)

	out := buf.String()
	require.Contains(t, out, "alarm fired")
	require.Contains(t, out, "Réveil")
	require.Contains(t, out, "tick 3")
	require.Contains(t, out, "gadgets")
}

// TestNewFile writes to the given file and discards when the path is empty.
func TestNewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gadgets.log")

	l, closeFn, err := NewFile(path, zapcore.InfoLevel)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("visible")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible")
	require.NotContains(t, string(data), "hidden")

	l, closeFn, err = NewFile("", zapcore.InfoLevel)
	require.NoError(t, err)
	l.Info("nowhere")
	require.NoError(t, closeFn())
}
