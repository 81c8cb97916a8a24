package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/skyops/airboss/internal/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the operations JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gormDB, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if port == 0 {
				port = cfg.Dashboard.Port
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return dashboard.Start(ctx, dashboard.StartOpts{
				DB:    gormDB,
				Store: st,
				Port:  port,
				Out:   cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port override")
	return cmd
}
