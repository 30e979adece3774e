package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gadget_tui/internal"
	"gadget_tui/internal/journal"
)

var (
	historyLimit int

	historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Print the most recent gadget events from the journal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			repo, err := journal.Open(cfg.JournalPath)
			if err != nil {
				return err
			}
			defer repo.Close()

			entries, err := repo.Recent(cmd.Context(), historyLimit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No events recorded.")
				return nil
			}

			plain := func(s ...string) string { return s[0] }
			for _, e := range entries {
				fmt.Fprintln(out, internal.FormatEntry(e, plain, plain))
			}

			return nil
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", journal.DefaultLimit, "number of events to print")
}
