package main

import (
	"context"

	"github.com/spf13/cobra"

	"plansync/internal/app"
	"plansync/internal/timeline"
)

func timelineCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "timeline [date]",
		Short: "Show the laid out events of a day",
		Long:  "Show calendar events and the timed tasks of the daily note for a day (YYYY-MM-DD, today, tomorrow...).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			var date string
			if len(args) == 1 {
				date = args[0]
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				out, err := a.Timeline.Day(ctx, timeline.DayInput{Date: date})
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), format, newDayView(out), func() string { return dayText(out) })
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format (text, json, yaml)")
	return cmd
}
