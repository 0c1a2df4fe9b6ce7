package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sparkfel/schedule1-reverse-search/catalog"
	"github.com/sparkfel/schedule1-reverse-search/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP/WebSocket search server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			cat, err := catalog.Ensure(cfg.Catalog)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			log.Printf("Loaded %d ingredients from %s", len(cat), cfg.Catalog)

			return server.New(cfg, cat).ListenAndServe()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides config)")
	return cmd
}
