// Package ui renders the decision surface on a terminal: captured transaction
// fields, a spinner while the oracle is thinking, the risk verdict, and an
// approve/reject prompt.
package ui

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"

	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/oracle"
	"github.com/walletgate/walletgate/internal/tx"
)

// Terminal implements modal.Surface on stdout.
type Terminal struct {
	mu      sync.Mutex
	loading chan struct{} // closed to stop the spinner
	spun    sync.WaitGroup
}

// NewTerminal creates a terminal surface.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// ShowLoading prints the raw transaction fields for transparency and starts
// a progress spinner. Decision controls are not offered yet.
func (t *Terminal) ShowLoading(req *tx.Request) {
	fmt.Println(requestBox(req))

	if !isTTY() {
		fmt.Println("risk analysis in progress...")
		return
	}

	t.mu.Lock()
	t.loading = make(chan struct{})
	done := t.loading
	t.mu.Unlock()

	t.spun.Add(1)
	go func() {
		defer t.spun.Done()
		spinner.New().
			Title("risk analysis in progress").
			Action(func() { <-done }).
			Run()
	}()
}

// ShowResult stops the spinner and prints the verdict.
func (t *Terminal) ShowResult(req *tx.Request, a *oracle.Analysis) {
	t.stopSpinner()

	tier := a.Tier().String()
	fmt.Printf("%s %s  (scam probability %.1f%%)\n",
		styleLabel.Render("Risk:"), tierStyle(tier).Render(tier), a.ScamProbability*100)
	if a.Explanation != "" {
		fmt.Println(styleNote.Render(a.Explanation))
	}
}

// ShowError stops the spinner and prints the failure, with a note that the
// user can still decide manually.
func (t *Terminal) ShowError(req *tx.Request, err error) {
	t.stopSpinner()

	fmt.Println(styleError.Render(fmt.Sprintf("risk analysis failed: %v", err)))
	fmt.Println(styleNote.Render("no score available — you can still approve or reject manually"))
}

// Decide prompts for the verdict. Blocks until a control is activated or ctx
// is cancelled.
func (t *Terminal) Decide(ctx context.Context) (decision.Decision, error) {
	var approve bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Allow this transaction to proceed?").
			Affirmative("Approve").
			Negative("Reject").
			Value(&approve),
	))

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	if approve {
		return decision.Approve, nil
	}
	return decision.Reject, nil
}

// Teardown releases the spinner if one is still running.
func (t *Terminal) Teardown() {
	t.stopSpinner()
	t.spun.Wait()
}

func (t *Terminal) stopSpinner() {
	t.mu.Lock()
	if t.loading != nil {
		close(t.loading)
		t.loading = nil
	}
	t.mu.Unlock()
}

func requestBox(req *tx.Request) string {
	var sb strings.Builder
	sb.WriteString(styleHeader.Render("Transaction captured"))
	sb.WriteString("\n")

	fields := [][2]string{
		{"Method", req.Method},
		{"From", req.From},
		{"To", req.To},
		{"Value", formatValue(req.Value)},
		{"Gas", req.Gas},
		{"Gas price", req.GasPrice},
		{"Chain", req.ChainID},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		sb.WriteString(styleLabel.Render(f[0]+":") + styleValue.Render(f[1]) + "\n")
	}
	return styleBox.Render(strings.TrimRight(sb.String(), "\n"))
}

// formatValue renders a wei amount in ether for readability, accepting both
// hex and decimal encodings. Anything unparseable is shown verbatim — the
// captured record itself is never normalized.
func formatValue(raw string) string {
	if raw == "" {
		return raw
	}

	var wei *big.Int
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		v, err := hexutil.DecodeBig(raw)
		if err != nil {
			return raw
		}
		wei = v
	} else {
		v, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return raw
		}
		wei = v
	}

	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return fmt.Sprintf("%s ETH (%s)", eth.Text('g', 6), raw)
}
