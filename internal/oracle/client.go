// Package oracle is the client for the remote risk-scoring service. One POST
// per transaction, no retries: a failed call surfaces immediately so it never
// delays a time-bounded decision.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/walletgate/walletgate/internal/tx"
)

const (
	defaultTimeout = 15 * time.Second

	transactionPath = "/detect/transaction"
	accountPath     = "/detect/account"

	// maxErrorBody caps how much of a failed response is carried in a
	// StatusError.
	maxErrorBody = 512
)

// StatusError is a non-2xx response from the scoring service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("oracle returned HTTP %d", e.Code)
	}
	return fmt.Sprintf("oracle returned HTTP %d: %s", e.Code, e.Body)
}

// Analysis is the scoring result for a single transaction.
type Analysis struct {
	ScamProbability float64
	Explanation     string
}

// Tier returns the coarse risk bucket for this analysis.
func (a *Analysis) Tier() Tier {
	return TierFor(a.ScamProbability)
}

// AccountAnalysis is the scoring result for an account lookup.
type AccountAnalysis struct {
	ScamProbability float64
	Transactions    int
	Explanation     string
}

// Tier returns the coarse risk bucket for this account.
func (a *AccountAnalysis) Tier() Tier {
	return TierFor(a.ScamProbability)
}

// Client issues scoring requests against a detection service.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	explain        bool
	explainWithLLM bool
}

// Option configures a Client at creation time.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithExplanations requests feature and LLM explanations from the service.
func WithExplanations(explain, withLLM bool) Option {
	return func(c *Client) {
		c.explain = explain
		c.explainWithLLM = withLLM
	}
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// transactionPayload is the wire request for transaction scoring. Value and
// gas fields are passed through verbatim — hex or decimal — because the
// service normalizes encodings, not the client.
type transactionPayload struct {
	FromAddress    string `json:"from_address"`
	ToAddress      string `json:"to_address"`
	Value          string `json:"value"`
	GasPrice       string `json:"gasPrice"`
	GasUsed        string `json:"gasUsed"`
	Explain        bool   `json:"explain"`
	ExplainWithLLM bool   `json:"explain_with_llm"`
}

type accountPayload struct {
	AccountAddress string `json:"account_address"`
	Explain        bool   `json:"explain"`
	ExplainWithLLM bool   `json:"explain_with_llm"`
}

// detectionResponse covers the fields consumed from both detection endpoints.
type detectionResponse struct {
	TransactionScamProbability float64 `json:"transaction_scam_probability"`
	AccountScamProbability     float64 `json:"account_scam_probability"`
	TransactionsCount          int     `json:"transactions_count"`
	LLMExplanations            struct {
		Transaction string `json:"transaction"`
		Account     string `json:"account"`
	} `json:"llm_explanations"`
}

// AnalyzeTransaction scores a single captured transaction.
func (c *Client) AnalyzeTransaction(ctx context.Context, req *tx.Request) (*Analysis, error) {
	payload := transactionPayload{
		FromAddress:    req.From,
		ToAddress:      req.To,
		Value:          req.Value,
		GasPrice:       req.GasPrice,
		GasUsed:        req.Gas,
		Explain:        c.explain,
		ExplainWithLLM: c.explainWithLLM,
	}

	var resp detectionResponse
	if err := c.post(ctx, transactionPath, payload, &resp); err != nil {
		return nil, err
	}

	return &Analysis{
		ScamProbability: resp.TransactionScamProbability,
		Explanation:     resp.LLMExplanations.Transaction,
	}, nil
}

// AnalyzeAccount scores an account by address history.
func (c *Client) AnalyzeAccount(ctx context.Context, address string) (*AccountAnalysis, error) {
	payload := accountPayload{
		AccountAddress: address,
		Explain:        c.explain,
		ExplainWithLLM: c.explainWithLLM,
	}

	var resp detectionResponse
	if err := c.post(ctx, accountPath, payload, &resp); err != nil {
		return nil, err
	}

	return &AccountAnalysis{
		ScamProbability: resp.AccountScamProbability,
		Transactions:    resp.TransactionsCount,
		Explanation:     resp.LLMExplanations.Account,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
