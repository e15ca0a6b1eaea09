package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smartcamp",
	Short: "Synthetic telecom dataset generator and campaign targeting API",
	Long: `smartcamp synthesizes an internally-consistent telecom customer dataset
(customers, support interactions, campaigns, products, issue trends and
campaign outreach funnels) and serves aggregate analytics over it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = false
}
