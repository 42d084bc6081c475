package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "walletgate",
	Short: "Transaction gate for wallet providers",
	Long: "Intercepts transaction-signing calls before they reach the wallet, scores\n" +
		"them against a remote risk oracle, and gates them on a human decision.\n" +
		"No decision within the deadline fails open: the page's call proceeds.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to walletgate YAML config")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
