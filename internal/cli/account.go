package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/walletgate/walletgate/internal/config"
	"github.com/walletgate/walletgate/internal/oracle"
)

func init() {
	rootCmd.AddCommand(accountCmd)
}

var accountCmd = &cobra.Command{
	Use:   "account <address>",
	Short: "Look up the scam probability of an account",
	Long: "Asks the detection service to score an account from its on-chain\n" +
		"transaction history.",
	Args: cobra.ExactArgs(1),
	RunE: runAccount,
}

func runAccount(cmd *cobra.Command, args []string) error {
	address := args[0]
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%q is not a valid address", address)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	client := oracle.NewClient(cfg.Oracle.URL,
		oracle.WithExplanations(cfg.Oracle.Explain, cfg.Oracle.ExplainWithLLM))

	a, err := client.AnalyzeAccount(cmd.Context(), address)
	if err != nil {
		return err
	}

	fmt.Printf("account:          %s\n", address)
	fmt.Printf("risk tier:        %s\n", a.Tier())
	fmt.Printf("scam probability: %.3f\n", a.ScamProbability)
	fmt.Printf("transactions:     %d\n", a.Transactions)
	if a.Explanation != "" {
		fmt.Printf("explanation:      %s\n", a.Explanation)
	}
	return nil
}
