package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skyops/airboss/internal/conflict"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/spf13/cobra"
)

func newConflictsCmd() *cobra.Command {
	var (
		configPath string
		asJSON     bool
		severity   string
	)

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Detect scheduling and resource conflicts",
		Long:  "Runs all conflict checks over the current record store state: double bookings, skill/cert mismatches, location mismatches, overdue maintenance, and unavailable-pilot assignments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromStore(st)
			if err != nil {
				return err
			}

			conflicts := conflict.Detect(snap, time.Now())
			if severity != "" {
				filtered := conflicts[:0]
				for _, c := range conflicts {
					if string(c.Severity) == severity {
						filtered = append(filtered, c)
					}
				}
				conflicts = filtered
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(conflicts)
			}

			if len(conflicts) == 0 {
				fmt.Fprintln(out, "No conflicts detected.")
				return nil
			}
			fmt.Fprintf(out, "Detected %d conflicts:\n", len(conflicts))
			for _, c := range conflicts {
				fmt.Fprintf(out, "  [%s] %s: %s (entity %s)\n",
					c.Severity, c.Type, c.Description, c.AffectedEntity)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the conflict report as JSON")
	cmd.Flags().StringVar(&severity, "severity", "", "filter by severity (High, Medium, Low)")
	return cmd
}
