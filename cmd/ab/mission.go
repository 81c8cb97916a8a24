package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/skyops/airboss/internal/report"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
	"github.com/spf13/cobra"
)

func newMissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mission",
		Short: "Mission management commands",
	}

	cmd.AddCommand(newMissionAddCmd())
	cmd.AddCommand(newMissionListCmd())
	cmd.AddCommand(newMissionShowCmd())
	cmd.AddCommand(newMissionUpdateCmd())
	cmd.AddCommand(newMissionDeleteCmd())
	return cmd
}

func newMissionAddCmd() *cobra.Command {
	var (
		configPath string
		client     string
		location   string
		priority   string
		skills     string
		certs      string
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "add <project-id>",
		Short: "Add a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			err = st.Append(store.KindMissions, map[string]string{
				"project_id":      args[0],
				"client":          client,
				"location":        location,
				"priority":        priority,
				"required_skills": skills,
				"required_certs":  certs,
				"start_date":      start,
				"end_date":        end,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added mission %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&client, "client", "", "client name (required)")
	cmd.Flags().StringVar(&location, "location", "", "mission location")
	cmd.Flags().StringVar(&priority, "priority", "Standard", "priority (Urgent, High, Standard)")
	cmd.Flags().StringVar(&skills, "required-skills", "", "comma-separated required skills")
	cmd.Flags().StringVar(&certs, "required-certs", "", "comma-separated required certifications")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("client")
	return cmd
}

func newMissionListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all missions",
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
			fmt.Fprintln(w, "ID\tCLIENT\tLOCATION\tPRIORITY\tSTART\tEND")
			for _, m := range snap.Missions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					m.ID, m.Client, m.Location, m.Priority, m.Start.Format(), m.End.Format())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}

func newMissionShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show mission status and assigned pilots",
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

			detail := report.MissionStatus(snap, args[0], time.Now())
			if detail == nil {
				return fmt.Errorf("mission %s not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mission %s — %s\n", detail.ProjectID, detail.Client)
			fmt.Fprintf(out, "Location: %s\n", detail.Location)
			fmt.Fprintf(out, "Window:   %s → %s\n", detail.StartDate, detail.EndDate)
			fmt.Fprintf(out, "Priority: %s\n", detail.Priority)
			fmt.Fprintf(out, "Status:   %s\n", detail.Status)
			fmt.Fprintf(out, "Required: %s | certs: %s\n", detail.RequiredSkills, detail.RequiredCerts)
			if len(detail.AssignedPilots) == 0 {
				fmt.Fprintln(out, "No pilots currently assigned.")
				return nil
			}
			fmt.Fprintln(out, "Assigned pilots:")
			for _, p := range detail.AssignedPilots {
				fmt.Fprintf(out, "  %s (%s) — %s | %s\n", p.Name, p.PilotID, p.Skills, p.Certifications)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}

func newMissionUpdateCmd() *cobra.Command {
	var (
		configPath string
		client     string
		location   string
		priority   string
		skills     string
		certs      string
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update mission fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			updates := map[string]string{}
			if cmd.Flags().Changed("client") {
				updates["client"] = client
			}
			if cmd.Flags().Changed("location") {
				updates["location"] = location
			}
			if cmd.Flags().Changed("priority") {
				updates["priority"] = priority
			}
			if cmd.Flags().Changed("required-skills") {
				updates["required_skills"] = skills
			}
			if cmd.Flags().Changed("required-certs") {
				updates["required_certs"] = certs
			}
			if cmd.Flags().Changed("start") {
				updates["start_date"] = start
			}
			if cmd.Flags().Changed("end") {
				updates["end_date"] = end
			}
			if len(updates) == 0 {
				return fmt.Errorf("no fields to update")
			}

			if err := st.UpdateFields(store.KindMissions, "project_id", args[0], updates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated mission %s (%d fields)\n", args[0], len(updates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().StringVar(&client, "client", "", "client name")
	cmd.Flags().StringVar(&location, "location", "", "mission location")
	cmd.Flags().StringVar(&priority, "priority", "", "priority")
	cmd.Flags().StringVar(&skills, "required-skills", "", "comma-separated required skills")
	cmd.Flags().StringVar(&certs, "required-certs", "", "comma-separated required certifications")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newMissionDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := st.Delete(store.KindMissions, "project_id", args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted mission %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
