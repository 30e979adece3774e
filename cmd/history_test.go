package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gadget_tui/internal/journal"
	"gadget_tui/internal/timelog"
)

// TestHistoryCommand prints journal entries newest first.
func TestHistoryCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "journal.db")

	repo, err := journal.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Record(context.Background(), &timelog.Entry{
		Gadget: timelog.GadgetTimer,
		Kind:   timelog.KindExpired,
		At:     time.Now(),
	}))
	require.NoError(t, repo.Record(context.Background(), &timelog.Entry{
		Gadget: timelog.GadgetAlarm,
		Kind:   timelog.KindFired,
		Detail: "07:00 - Réveil",
		At:     time.Now(),
	}))
	require.NoError(t, repo.Close())

	cfgPath := filepath.Join(dir, "gadgets.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("journal_path: "+dbPath+"\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"history", "--config", cfgPath, "--limit", "10"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	require.Contains(t, string(lines[0]), "[alarm fired] 07:00 - Réveil")
	require.Contains(t, string(lines[1]), "[timer expired]")
}
