// Command wardrobe_agent is the entrypoint for the wardrobe stylist: it runs
// the HTTP backend, applies database migrations, and can produce one-shot
// outfit suggestions from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wardrobe_agent",
	Short: "AI wardrobe stylist backend",
	Long: `wardrobe_agent manages a personal wardrobe and suggests outfits for an
occasion using the closet contents, the current weather, and a language model.

Use "serve" to run the HTTP backend, "migrate" to prepare the database, and
"suggest" for a one-shot suggestion without starting the server.`,
}

func main() {
	// Load .env file if present (ignore error if file doesn't exist)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
