package cli

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/walletgate/walletgate/internal/alert"
	"github.com/walletgate/walletgate/internal/config"
	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/metrics"
	"github.com/walletgate/walletgate/internal/modal"
	"github.com/walletgate/walletgate/internal/oracle"
	"github.com/walletgate/walletgate/internal/relay"
	"github.com/walletgate/walletgate/internal/tx"
	"github.com/walletgate/walletgate/internal/ui"
	sdk "github.com/walletgate/walletgate/sdk/go/walletgate"
)

var (
	interceptFrom     string
	interceptTo       string
	interceptValue    string
	interceptGasPrice string
)

func init() {
	rootCmd.AddCommand(interceptCmd)
	interceptCmd.Flags().StringVar(&interceptFrom, "from", "", "Sender address")
	interceptCmd.Flags().StringVar(&interceptTo, "to", "", "Recipient address (required)")
	interceptCmd.Flags().StringVar(&interceptValue, "value", "0x0", "Amount in wei, hex or decimal")
	interceptCmd.Flags().StringVar(&interceptGasPrice, "gas-price", "", "Gas price in wei")
	interceptCmd.MarkFlagRequired("to")
}

var interceptCmd = &cobra.Command{
	Use:   "intercept",
	Short: "Run one transaction through the full interception pipeline",
	Long: "Wraps a stub wallet provider with the guard, captures the transaction\n" +
		"built from flags, scores it, and waits for your approve/reject decision\n" +
		"on this terminal. Times out after the fail-open deadline.",
	RunE: runIntercept,
}

// storeAnalyzer resolves the oracle endpoint from the live config snapshot on
// every call, so a hot-reloaded URL takes effect without restarting.
type storeAnalyzer struct {
	store *config.Store
}

func (s *storeAnalyzer) AnalyzeTransaction(ctx context.Context, req *tx.Request) (*oracle.Analysis, error) {
	o := s.store.Current().Oracle
	client := oracle.NewClient(o.URL, oracle.WithExplanations(o.Explain, o.ExplainWithLLM))
	return client.AnalyzeTransaction(ctx, req)
}

// stubProvider stands in for a wallet: it acknowledges every forwarded call
// with a random transaction hash.
type stubProvider struct{}

func (stubProvider) Request(ctx context.Context, method string, params ...any) (any, error) {
	var h [32]byte
	rand.Read(h[:])
	return "0x" + hex.EncodeToString(h[:]), nil
}

func runIntercept(cmd *cobra.Command, args []string) error {
	store, err := config.NewStore(configPath)
	if err != nil {
		return err
	}
	cfg := store.Current()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if configPath != "" {
		if reloader, err := config.NewReloader(store); err == nil {
			go reloader.Run(ctx)
		}
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go srv.ListenAndServe()
		defer srv.Close()
	}

	board := decision.NewBoard()
	rl := relay.New(cfg.Origin, &storeAnalyzer{store: store}, board,
		func() modal.Surface { return ui.NewTerminal() })
	go rl.Run(ctx)

	guard := sdk.Wrap(stubProvider{}, board, rl,
		sdk.WithOrigin(cfg.Origin),
		sdk.WithAlerts(alert.NewDispatcher(cfg.Alerts)),
	)

	result, err := guard.Request(ctx, tx.MethodSendTransaction, map[string]string{
		"from":     interceptFrom,
		"to":       interceptTo,
		"value":    interceptValue,
		"gasPrice": interceptGasPrice,
	})

	var rejected *sdk.RejectedError
	switch {
	case errors.As(err, &rejected):
		fmt.Println("transaction rejected — wallet was never called")
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("transaction forwarded to wallet: %v\n", result)
	return nil
}
