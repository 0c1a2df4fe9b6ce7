package cli

import (
	"github.com/spf13/cobra"

	"github.com/sparkfel/schedule1-reverse-search/catalog"
)

// NewScrapeCommand creates the scrape command.
func NewScrapeCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the mixing data from the wiki into a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return catalog.Run(out)
		},
	}

	cmd.Flags().StringVar(&out, "out", catalog.DefaultFile, "Output catalog file")
	return cmd
}
