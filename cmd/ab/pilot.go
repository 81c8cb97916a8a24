package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
	"github.com/spf13/cobra"
)

func newPilotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pilot",
		Short: "Pilot roster commands",
	}

	cmd.AddCommand(newPilotAddCmd())
	cmd.AddCommand(newPilotListCmd())
	cmd.AddCommand(newPilotDeleteCmd())
	return cmd
}

func newPilotAddCmd() *cobra.Command {
	var (
		configPath    string
		name          string
		location      string
		status        string
		skills        string
		certs         string
		availableFrom string
	)

	cmd := &cobra.Command{
		Use:   "add <pilot-id>",
		Short: "Add a pilot to the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			err = st.Append(store.KindPilots, map[string]string{
				"pilot_id":           args[0],
				"name":               name,
				"location":           location,
				"status":             status,
				"skills":             skills,
				"certifications":     certs,
				"current_assignment": "–",
				"available_from":     availableFrom,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added pilot %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&name, "name", "", "pilot name (required)")
	cmd.Flags().StringVar(&location, "location", "", "home location")
	cmd.Flags().StringVar(&status, "status", "Available", "status (Available, Assigned, On Leave)")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	cmd.Flags().StringVar(&certs, "certs", "", "comma-separated certifications")
	cmd.Flags().StringVar(&availableFrom, "available-from", "", "earliest start date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newPilotListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pilots",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromStore(st)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tLOCATION\tSTATUS\tASSIGNMENT\tAVAILABLE FROM")
			for _, p := range snap.Pilots {
				assignment := "–"
				if p.Assignment != nil {
					assignment = *p.Assignment
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.Location, p.Status, assignment, p.AvailableFrom.Format())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}

func newPilotDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <pilot-id>",
		Short: "Delete a pilot from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := st.Delete(store.KindPilots, "pilot_id", args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted pilot %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
