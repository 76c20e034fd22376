package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meera/wardrobe-stylist/internal/config"
	"github.com/meera/wardrobe-stylist/internal/logging"
	"github.com/meera/wardrobe-stylist/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the wardrobe HTTP backend",
	Long: `Starts the HTTP server: profiles, wardrobe items, photo analysis,
favorites, weather, and outfit suggestions.

Requires DATABASE_URL, GEMINI_API_KEY, and JWT_SECRET in the environment or a .env file.`,
	RunE: runServe,
}

var serveAddr string

func init() {
	serveCommand.Flags().StringVar(&serveAddr, "addr", "", "Listen address (defaults to ADDR env var or :8000)")

	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	logging.Setup(cfg.LogLevel)

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return srv.Start()
}
