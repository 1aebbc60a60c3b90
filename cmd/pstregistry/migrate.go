package main

import (
	"pst-registry/config"
	pgStorage "pst-registry/internal/adapter/storage/postgres"
	"pst-registry/pkg/logger"

	"github.com/spf13/cobra"
)

func migrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL schema",
		Long: `Apply every embedded migration to the configured database.
Statements are idempotent, so running migrate twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

			pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer pool.Close()

			return pgStorage.Migrate(cmd.Context(), pool, log)
		},
	}
}
