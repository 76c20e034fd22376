package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/wardrobe-stylist/internal/config"
	"github.com/meera/wardrobe-stylist/internal/db"
)

var migrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Connects to Postgres and applies the profiles, items, and favorites schema. Safe to run repeatedly.`,
	RunE:  runMigrate,
}

var migrateDatabaseURL string

func init() {
	migrateCommand.Flags().StringVar(&migrateDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(migrateCommand)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	databaseURL := cfg.DatabaseURL
	if migrateDatabaseURL != "" {
		databaseURL = migrateDatabaseURL
	}
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required (env var or --db-url)")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Println("Database schema is up to date.")
	return nil
}
