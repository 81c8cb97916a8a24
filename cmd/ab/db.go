package main

import (
	"fmt"

	"github.com/skyops/airboss/internal/config"
	"github.com/skyops/airboss/internal/db"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Record store management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBPingCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var (
		configPath string
		seed       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Airboss record store",
		Long:  "Migrates the pilot, drone, mission, and scan-history tables. Use --seed for demo data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath, seed)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	cmd.Flags().BoolVar(&seed, "seed", false, "seed a small demo roster, fleet, and mission set")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string, seed bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gormDB, err := db.Open(cfg.Store)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == "sqlite" {
		fmt.Fprintf(out, "Opened record store at %s\n", cfg.Store.Path)
	} else {
		fmt.Fprintf(out, "Connected to record store at %s:%d/%s\n", cfg.Store.Host, cfg.Store.Port, cfg.Store.Database)
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(db.AllModels()))

	if seed {
		if err := db.SeedDemo(gormDB); err != nil {
			return err
		}
		fmt.Fprintln(out, "Seeded demo pilots, drones, and missions")
	}

	fmt.Fprintln(out, "\nAirboss record store initialized successfully.")
	return nil
}

func newDBPingCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check record store connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, gormDB, _, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}
			if err := db.Ping(gormDB); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Record store reachable (driver %s)\n", cfg.Store.Driver)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "airboss.yaml", "path to Airboss config file")
	return cmd
}
