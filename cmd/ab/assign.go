package main

import (
	"fmt"
	"time"

	"github.com/skyops/airboss/internal/assign"
	"github.com/spf13/cobra"
)

func newAssignCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "assign <pilot-id> <project-id>",
		Short: "Assign a pilot to a mission",
		Long:  "Assigns a pilot to a mission. The only hard gate is skill/certification completeness; run 'ab conflicts' afterward to review double bookings and location mismatches.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			msg, err := assign.Assign(st, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}

func newUnassignCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "unassign <pilot-id>",
		Short: "Release a pilot from their current mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			msg, err := assign.Unassign(st, args[0], time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
