package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/walletgate/walletgate/internal/config"
	"github.com/walletgate/walletgate/internal/oracle"
	"github.com/walletgate/walletgate/internal/tx"
)

var (
	analyzeFrom     string
	analyzeTo       string
	analyzeValue    string
	analyzeGas      string
	analyzeGasPrice string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "Sender address")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "Recipient address (required)")
	analyzeCmd.Flags().StringVar(&analyzeValue, "value", "0x0", "Amount in wei, hex or decimal")
	analyzeCmd.Flags().StringVar(&analyzeGas, "gas", "", "Gas limit, hex or decimal")
	analyzeCmd.Flags().StringVar(&analyzeGasPrice, "gas-price", "", "Gas price in wei, hex or decimal")
	analyzeCmd.MarkFlagRequired("to")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a single transaction against the risk oracle",
	Long: "Builds a transaction record from flags, sends it to the configured\n" +
		"detection service, and prints the scam probability and risk tier.\n" +
		"No interception, no decision gate — a one-shot query.",
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if !common.IsHexAddress(analyzeTo) {
		return fmt.Errorf("--to %q is not a valid address", analyzeTo)
	}
	if analyzeFrom != "" && !common.IsHexAddress(analyzeFrom) {
		return fmt.Errorf("--from %q is not a valid address", analyzeFrom)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	req, err := tx.FromParams(tx.MethodSendTransaction, []any{map[string]string{
		"from":     analyzeFrom,
		"to":       analyzeTo,
		"value":    analyzeValue,
		"gas":      analyzeGas,
		"gasPrice": analyzeGasPrice,
	}})
	if err != nil {
		return err
	}

	client := oracle.NewClient(cfg.Oracle.URL,
		oracle.WithExplanations(cfg.Oracle.Explain, cfg.Oracle.ExplainWithLLM))

	a, err := client.AnalyzeTransaction(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Printf("risk tier:        %s\n", a.Tier())
	fmt.Printf("scam probability: %.3f\n", a.ScamProbability)
	if a.Explanation != "" {
		fmt.Printf("explanation:      %s\n", a.Explanation)
	}
	return nil
}
