package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/dormshare/internal/config"
	"github.com/mmynk/dormshare/internal/storage/sqlite"
)

// migrateCommand applies pending goose migrations and exits.
func migrateCommand(load func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load()

			db, err := sqlite.Open(cfg.Database.Path, sqlite.Options{BusyTimeout: cfg.Database.BusyTimeout})
			if err != nil {
				return err
			}
			defer db.Close()

			if err := sqlite.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			slog.Info("Database migrated", "database", cfg.Database.Path)
			return nil
		},
	}
}
