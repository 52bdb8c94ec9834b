package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "impactvault",
	Short: "Impact vault demo server",
	Long: `Impact Vault serves a single page where a local encrypted wallet deposits
into a yield vault whose harvested yield goes to a donation wallet.
Without a configured contract every transaction is simulated.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
