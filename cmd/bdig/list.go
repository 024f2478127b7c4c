package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdig/bdig/internal/config"
	"github.com/bdig/bdig/internal/metadata"
)

func newListCmd() *cobra.Command {
	var (
		backupsRoot string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available device backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := backupsRoot
			if root == "" {
				root = config.GetBackupsRoot()
			}

			backups, err := metadata.NewRepository(root).FindAll()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputBackupsJSON(cmd, backups)
			case "table":
				outputBackupsTable(cmd, backups)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&backupsRoot, "backups-root", "", "Directory holding one subdirectory per backup (default: platform sync location)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}
