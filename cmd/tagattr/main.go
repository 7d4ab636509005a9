package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tagattr",
	Short: "Inspect markup start-tag attributes",
	Long:  `tagattr scans the attribute list of a markup start tag and reports every attribute and every malformed span it finds`,
}

func main() {
	rootCmd.AddCommand(scanCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
