package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sparkfel/schedule1-reverse-search/config"
)

var configPath string

// NewRootCommand creates the root command for the CLI.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "s1search",
		Short: "Reverse recipe search for Schedule 1 mixing",
		Long: `s1search finds the cheapest or most profitable ingredient sequence
that produces a desired set of product effects.

Examples:
  s1search search --effects "Shrinking,Glowing" --mode cost --max-depth 8
  s1search search --mode profit --max-depth 6 --allow "Cuke,Banana,Chili"
  s1search serve --port 8080
  s1search scrape`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewScrapeCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
