package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/skyops/airboss/internal/report"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	var (
		configPath string
		skill      string
		cert       string
		location   string
		capability string
		drones     bool
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List available pilots (or drones) with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromStore(st)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

			if drones {
				matches := report.AvailableDrones(snap, capability, location)
				if len(matches) == 0 {
					fmt.Fprintln(out, "No available drones match.")
					return nil
				}
				fmt.Fprintln(w, "ID\tMODEL\tCAPABILITIES\tLOCATION")
				for _, d := range matches {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						d.ID, d.Model, strings.Join(d.Capabilities, ", "), d.Location)
				}
				return w.Flush()
			}

			matches := report.AvailablePilots(snap, skill, cert, location)
			if len(matches) == 0 {
				fmt.Fprintln(out, "No available pilots match.")
				return nil
			}
			fmt.Fprintln(w, "ID\tNAME\tSKILLS\tCERTS\tLOCATION")
			for _, p := range matches {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.RawSkills, p.RawCerts, p.Location)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&skill, "skill", "", "filter pilots by skill token")
	cmd.Flags().StringVar(&cert, "cert", "", "filter pilots by certification token")
	cmd.Flags().StringVar(&location, "location", "", "filter by exact location")
	cmd.Flags().StringVar(&capability, "capability", "", "filter drones by capability token")
	cmd.Flags().BoolVar(&drones, "drones", false, "list drones instead of pilots")
	return cmd
}
