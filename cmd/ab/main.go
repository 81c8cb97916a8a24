package main

import (
	"fmt"
	"os"

	"github.com/skyops/airboss/internal/config"
	"github.com/skyops/airboss/internal/db"
	"github.com/skyops/airboss/internal/store"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ab",
		Short: "Airboss — drone operations coordination",
		Long:  "Airboss tracks pilots, drones, and missions, detects scheduling conflicts, and recommends assignments.",
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newPilotCmd())
	cmd.AddCommand(newDroneCmd())
	cmd.AddCommand(newMissionCmd())
	cmd.AddCommand(newConflictsCmd())
	cmd.AddCommand(newRecommendCmd())
	cmd.AddCommand(newAssignCmd())
	cmd.AddCommand(newUnassignCmd())
	cmd.AddCommand(newRosterCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newDashboardCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ab %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// connectFromConfig loads the config and opens the record store.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, store.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	gormDB, err := db.Open(cfg.Store)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, gormDB, store.NewGorm(gormDB), nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
