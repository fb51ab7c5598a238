package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"plansync/config"
	"plansync/internal/app"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "plansync",
		Short:         "Sync markdown checklist tasks with Google Calendar",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(runsCmd())
	rootCmd.AddCommand(authCmd())

	return rootCmd
}

// withApp loads the configuration, wires the components and hands them to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := cmd.Context()
	a, err := app.Build(ctx, app.NewLogger(cfg.Logger), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
