package main

import (
	"fmt"
	"strings"

	"github.com/skyops/airboss/internal/recommend"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	var (
		configPath string
		topN       int
	)

	cmd := &cobra.Command{
		Use:   "recommend <project-id>",
		Short: "Rank available pilots for a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromStore(st)
			if err != nil {
				return err
			}

			candidates := recommend.FindBestPilots(snap, args[0], topN)
			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintf(out, "No candidates for %s (unknown mission or no available pilots).\n", args[0])
				return nil
			}

			for i, c := range candidates {
				marker := ""
				if c.PerfectMatch {
					marker = " [perfect match]"
				}
				fmt.Fprintf(out, "%d. %s (%s) — score %d%s\n", i+1, c.Name, c.PilotID, c.Score, marker)
				fmt.Fprintf(out, "   %s\n", strings.Join(c.Reasons, "; "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().IntVarP(&topN, "top", "n", 3, "number of candidates to show")
	return cmd
}
