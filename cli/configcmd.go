package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparkfel/schedule1-reverse-search/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	var out string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config.yaml with the default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteStarter(out); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}
	initCmd.Flags().StringVar(&out, "out", "config.yaml", "Where to write the config file")

	cmd.AddCommand(initCmd)
	return cmd
}
