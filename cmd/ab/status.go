package main

import (
	"fmt"
	"time"

	"github.com/skyops/airboss/internal/report"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the availability overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromStore(st)
			if err != nil {
				return err
			}

			s := report.Summarize(snap, time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pilots:   %d total, %d available, %d assigned, %d on leave\n",
				s.Pilots.Total, s.Pilots.Available, s.Pilots.Assigned, s.Pilots.OnLeave)
			fmt.Fprintf(out, "Drones:   %d total, %d available, %d deployed, %d in maintenance\n",
				s.Drones.Total, s.Drones.Available, s.Drones.Deployed, s.Drones.Maintenance)
			fmt.Fprintf(out, "Missions: %d total, %d active, %d upcoming, %d urgent\n",
				s.Missions.Total, s.Missions.Active, s.Missions.Upcoming, s.Missions.Urgent)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
