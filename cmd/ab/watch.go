package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/skyops/airboss/internal/notify"
	"github.com/skyops/airboss/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		configPath string
		schedule   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the conflict scan daemon",
		Long:  "Scans for conflicts on a cron schedule, records scan history, and notifies configured channels when high-severity conflicts appear. Runs until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gormDB, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			if schedule == "" {
				schedule = cfg.Watch.Schedule
			}
			notifier, err := notify.FromConfigParts(
				cfg.Notify.Slack.Token, cfg.Notify.Slack.Channel,
				cfg.Notify.Discord.Token, cfg.Notify.Discord.Channel,
				cfg.Notify.Command,
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watch.Run(ctx, watch.Opts{
				DB:       gormDB,
				Store:    st,
				Schedule: schedule,
				Notifier: notifier,
				Out:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron schedule override (5-field)")
	return cmd
}
