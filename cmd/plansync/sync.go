package main

import (
	"context"

	"github.com/spf13/cobra"

	"plansync/internal/app"
	"plansync/internal/sync"
)

func syncCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sync <path>",
		Short: "Reconcile one note with the calendar",
		Long: `Reconcile the checklist tasks of a vault note with the calendar.

Remote deletions complete their tasks, completed or opted-out tasks lose
their events, new scheduled tasks get events and changed tasks update them.
The note is rewritten only when a line changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Sync.SyncDocument(ctx, sync.SyncInput{Path: args[0], Trigger: sync.TriggerCLI})
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, newSyncView(out), func() string { return syncText(out) })
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml)")
	return cmd
}

func runsCmd() *cobra.Command {
	var (
		format string
		path   string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent sync runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				runs, err := a.Sync.ListRuns(ctx, sync.ListRunsInput{Path: path, Limit: limit})
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, newRunViews(runs), func() string { return runsText(runs) })
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&path, "path", "p", "", "Only runs of this note")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs")
	return cmd
}
