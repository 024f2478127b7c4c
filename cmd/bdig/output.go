package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bdig/bdig/internal/backup"
	"github.com/bdig/bdig/internal/extract"
	"github.com/bdig/bdig/internal/metadata"
)

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

type fileOutputEntry struct {
	FileID       string `json:"file_id"`
	Domain       string `json:"domain"`
	RelativePath string `json:"relative_path"`
	Flags        string `json:"flags"`
}

func outputFilesJSON(cmd *cobra.Command, files []backup.File) error {
	output := make([]fileOutputEntry, 0, len(files))
	for _, f := range files {
		output = append(output, fileOutputEntry{
			FileID:       f.ID().Value(),
			Domain:       f.Domain().Value(),
			RelativePath: f.RelativePath().Value(),
			Flags:        f.Flags().String(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputFilesTable(cmd *cobra.Command, files []backup.File) {
	if len(files) == 0 {
		cmd.Println("No files found matching the search criteria.")
		return
	}

	cmd.Printf("Found %d file(s):\n", len(files))

	// The file ID column is fixed at 40 characters; split the rest of the
	// terminal between domain and path, truncating with an ellipsis so each
	// record stays on a single line.
	termWidth := getTerminalWidth()
	available := termWidth - backup.FileIDLength - 12
	domainWidth := available / 3
	if domainWidth < 16 {
		domainWidth = 16
	}
	pathWidth := available - domainWidth
	if pathWidth < 20 {
		pathWidth = 20
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Domain", "Path"})

	for _, f := range files {
		t.AppendRow(table.Row{
			f.ID().Value(),
			runewidth.Truncate(f.Domain().Value(), domainWidth, "..."),
			runewidth.Truncate(f.RelativePath().Value(), pathWidth, "..."),
		})
	}

	t.Render()
}

func outputExtractSummary(cmd *cobra.Command, result extract.Result) {
	cmd.Println("Extraction completed:")

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Status", "Count"})
	t.AppendRow(table.Row{"Extracted", result.ExtractedCount})
	t.AppendRow(table.Row{"Skipped", result.SkippedCount})
	t.AppendRow(table.Row{"Errors", len(result.Errors)})
	t.Render()

	matched := result.ExtractedCount + result.SkippedCount + len(result.Errors)
	if matched > 0 && result.ExtractedCount == 0 && len(result.Errors) == 0 {
		cmd.Println("Note: every matched file was skipped; their blobs are not present in this backup.")
	}

	if len(result.Errors) > 0 {
		cmd.Println("\nError details:")
		et := table.NewWriter()
		et.SetOutputMirror(cmd.OutOrStdout())
		et.SetStyle(table.StyleLight)
		et.AppendHeader(table.Row{"File ID", "Path", "Error"})
		for _, ferr := range result.Errors {
			et.AppendRow(table.Row{ferr.FileID, ferr.RelativePath, ferr.Message})
		}
		et.Render()
	}
}

type backupOutputEntry struct {
	ID             string `json:"id"`
	DeviceName     string `json:"device_name"`
	ProductName    string `json:"product_name"`
	LastBackupDate string `json:"last_backup_date"`
}

func outputBackupsJSON(cmd *cobra.Command, backups []metadata.Backup) error {
	output := make([]backupOutputEntry, 0, len(backups))
	for _, b := range backups {
		output = append(output, backupOutputEntry{
			ID:             b.ID.Value(),
			DeviceName:     b.DeviceName,
			ProductName:    b.ProductName,
			LastBackupDate: b.LastBackupDate.Format(time.RFC3339),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputBackupsTable(cmd *cobra.Command, backups []metadata.Backup) {
	if len(backups) == 0 {
		cmd.Println("No backups found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Device", "Product", "Last Backup"})

	for _, b := range backups {
		t.AppendRow(table.Row{
			b.ID.Value(),
			b.DeviceName,
			b.ProductName,
			b.LastBackupDate.Format("2006-01-02 15:04:05"),
		})
	}

	t.Render()
}
