package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/config"
	"github.com/meera/wardrobe-stylist/internal/db"
	"github.com/meera/wardrobe-stylist/internal/llm"
	"github.com/meera/wardrobe-stylist/internal/logging"
	"github.com/meera/wardrobe-stylist/internal/observability"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/stylist"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

var suggestCommand = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest an outfit for an occasion without starting the server",
	Long: `Loads the profile's wardrobe from Postgres, fetches the current weather,
and asks the model for an outfit suggestion. Prints the suggestion to stdout.`,
	RunE: runSuggest,
}

var (
	suggestProfileID string
	suggestOccasion  string
	suggestCity      string
	suggestAPIKey    string
	suggestVerbose   bool
)

func init() {
	suggestCommand.Flags().StringVarP(&suggestProfileID, "profile-id", "p", "", "Profile UUID (required)")
	suggestCommand.Flags().StringVarP(&suggestOccasion, "occasion", "o", "", "Occasion to dress for, e.g. \"office party\" (required)")
	suggestCommand.Flags().StringVarP(&suggestCity, "city", "c", "", "City for the weather lookup (defaults to DEFAULT_CITY)")
	suggestCommand.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY env var)")
	suggestCommand.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Print the wardrobe, weather, and parsed outfit")

	_ = suggestCommand.MarkFlagRequired("profile-id")
	_ = suggestCommand.MarkFlagRequired("occasion")

	rootCmd.AddCommand(suggestCommand)
}

// cliWardrobe adapts db item rows to the closet items the stylist works on.
type cliWardrobe struct {
	database *db.DB
}

func (w cliWardrobe) ItemsByProfile(ctx context.Context, profileID uuid.UUID) ([]closet.Item, error) {
	rows, err := w.database.ListItemsByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	items := make([]closet.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, closet.Item{Name: row.Name, Category: row.Category})
	}
	return items, nil
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.LogLevel)

	profileID, err := uuid.Parse(suggestProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", suggestProfileID, err)
	}

	apiKey := suggestAPIKey
	if apiKey == "" {
		apiKey = cfg.GeminiAPIKey
	}
	if apiKey == "" {
		return errors.New("GEMINI_API_KEY is required (env var or --api-key)")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	city := suggestCity
	if city == "" {
		city = cfg.DefaultCity
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}
	defer client.Close()

	rules, err := occasions.Load()
	if err != nil {
		return fmt.Errorf("failed to load occasion rules: %w", err)
	}

	profile, err := database.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to look up profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile not found: %s", profileID)
	}

	styler := stylist.New(cliWardrobe{database}, weather.NewClient(), client, rules)
	result, err := styler.Suggest(ctx, stylist.Request{
		ProfileID:   profileID,
		ProfileName: profile.Name,
		Occasion:    suggestOccasion,
		City:        city,
	})
	if err != nil {
		return err
	}

	if suggestVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintWardrobe(result.Items)
		printer.PrintWeather(result.Weather)
		printer.PrintResult(result)
		fmt.Println()
	}

	fmt.Println(result.Suggestion)
	return nil
}
