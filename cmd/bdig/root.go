package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bdig",
	Short: "bdig - inventory and extract files from device backups",
	Long: "bdig searches the manifest index of a device backup and extracts " +
		"matching files from its content-addressed blob store.",
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newMCPCmd())
}
