// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amberwatch",
	Short: "AmberWatch sends electricity price alerts for Amber Electric subscribers",
	Long: `AmberWatch lets subscribers configure electricity price thresholds
through a web form and emails them when the live Amber Electric price or
renewable percentage crosses those thresholds.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
