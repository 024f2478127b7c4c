package main

import (
	"github.com/spf13/cobra"

	"github.com/bdig/bdig/internal/extract"
	"github.com/bdig/bdig/internal/manifest"
)

func newExtractCmd() *cobra.Command {
	var (
		backupDir string
		outputDir string
		filters   filterFlags
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract matching files from a backup",
		Long: "extract searches the backup manifest and copies every matched " +
			"file from the blob store into the output directory, preserving " +
			"relative paths. Files whose blobs were pruned from the backup are " +
			"skipped; individual copy failures are reported without stopping " +
			"the batch.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := filters.params(cmd)
			q, err := params.Build()
			if err != nil {
				return err
			}

			dbCtx, err := manifest.Open(backupDir)
			if err != nil {
				return err
			}
			defer func() {
				_ = manifest.Close(dbCtx)
			}()

			extractor := extract.New(manifest.NewFileRepository(dbCtx))

			result, err := extractor.Run(cmd.Context(), backupDir, outputDir, q)
			if err != nil {
				return err
			}

			outputExtractSummary(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&backupDir, "backup-dir", "b", "", "Backup directory containing Manifest.db and the blob store")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to extract files into")
	filters.register(cmd)
	_ = cmd.MarkFlagRequired("backup-dir")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
