package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdig/bdig/internal/manifest"
	"github.com/bdig/bdig/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		backupDir string
		format    string
		filters   filterFlags
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the backup manifest for files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbCtx, err := manifest.Open(backupDir)
			if err != nil {
				return err
			}
			defer func() {
				_ = manifest.Close(dbCtx)
			}()

			svc := search.New(manifest.NewFileRepository(dbCtx))

			files, err := svc.Search(cmd.Context(), filters.params(cmd))
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputFilesJSON(cmd, files)
			case "table":
				outputFilesTable(cmd, files)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&backupDir, "backup-dir", "b", "", "Backup directory containing Manifest.db")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	filters.register(cmd)
	_ = cmd.MarkFlagRequired("backup-dir")

	return cmd
}
