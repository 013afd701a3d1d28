package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"aurora/internal/history"
)

func newHistoryCommand(cmdCtx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past transcription jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No transcription jobs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					strconv.FormatInt(rec.ID, 10),
					filepath.Base(rec.SourcePath),
					rec.Format,
					rec.State,
					formatDuration(rec.FinishedAt.Sub(rec.StartedAt)),
					rec.FinishedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Source", "Format", "State", "Duration", "Finished"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.AddCommand(newHistoryClearCommand(cmdCtx))
	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum number of jobs to show (0 for all)")
	return cmd
}

func newHistoryClearCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return d.Round(time.Second).String()
}
