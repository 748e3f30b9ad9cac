package main

import (
	"context"
	"errors"
	"time"

	dbpostgres "jobquery/internal/database/postgres"
	"jobquery/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the synonym table into Postgres",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		return err
	}
	if !cfg.Database.Enabled() {
		return errors.New("DB_HOST is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	r := seeder.Runner{Seeders: seeder.Defaults(cfg.Query.Synonyms), Logger: logger}
	if err := r.Run(ctx, db); err != nil {
		logger.Error("seed failed", "err", err)
		return err
	}
	logger.Info("seed complete", "titles", len(cfg.Query.Synonyms))
	return nil
}
