package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
	"github.com/spf13/cobra"
)

func newDroneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drone",
		Short: "Drone fleet commands",
	}

	cmd.AddCommand(newDroneAddCmd())
	cmd.AddCommand(newDroneListCmd())
	cmd.AddCommand(newDroneDeleteCmd())
	return cmd
}

func newDroneAddCmd() *cobra.Command {
	var (
		configPath     string
		model          string
		capabilities   string
		status         string
		location       string
		maintenanceDue string
	)

	cmd := &cobra.Command{
		Use:   "add <drone-id>",
		Short: "Add a drone to the fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			err = st.Append(store.KindDrones, map[string]string{
				"drone_id":           args[0],
				"model":              model,
				"capabilities":       capabilities,
				"status":             status,
				"location":           location,
				"current_assignment": "–",
				"maintenance_due":    maintenanceDue,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added drone %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&model, "model", "", "airframe model (required)")
	cmd.Flags().StringVar(&capabilities, "capabilities", "", "comma-separated capabilities")
	cmd.Flags().StringVar(&status, "status", "Available", "status (Available, Deployed, Maintenance)")
	cmd.Flags().StringVar(&location, "location", "", "current location")
	cmd.Flags().StringVar(&maintenanceDue, "maintenance-due", "", "next maintenance date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("model")
	return cmd
}

func newDroneListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all drones",
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
			fmt.Fprintln(w, "ID\tMODEL\tLOCATION\tSTATUS\tASSIGNMENT\tMAINTENANCE DUE")
			for _, d := range snap.Drones {
				assignment := "–"
				if d.Assignment != nil {
					assignment = *d.Assignment
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					d.ID, d.Model, d.Location, d.Status, assignment, d.MaintenanceDue.Format())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}

func newDroneDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <drone-id>",
		Short: "Delete a drone from the fleet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := st.Delete(store.KindDrones, "drone_id", args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted drone %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
