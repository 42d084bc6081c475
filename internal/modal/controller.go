// Package modal drives one decision surface for one captured transaction:
// request analysis, render progress and result, collect the verdict, publish
// it on the decision board. The state machine is an explicit value with pure
// transitions; rendering is delegated to a Surface so the controller can be
// tested headless.
package modal

import (
	"context"
	"sync"

	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/metrics"
	"github.com/walletgate/walletgate/internal/oracle"
	"github.com/walletgate/walletgate/internal/tx"
)

// Analyzer is the slice of the oracle client the controller needs.
type Analyzer interface {
	AnalyzeTransaction(ctx context.Context, req *tx.Request) (*oracle.Analysis, error)
}

// Surface renders controller state and collects the user's verdict.
// Decide blocks until a control is activated or ctx is done.
type Surface interface {
	ShowLoading(req *tx.Request)
	ShowResult(req *tx.Request, a *oracle.Analysis)
	ShowError(req *tx.Request, err error)
	Decide(ctx context.Context) (decision.Decision, error)
	Teardown()
}

// Controller owns one modal lifecycle. It is single-use: Run is called once
// and returns when the modal is resolved or torn down.
type Controller struct {
	req     *tx.Request
	oracle  Analyzer
	board   *decision.Board
	surface Surface

	mu    sync.Mutex
	state State
}

// New creates a controller for one captured transaction.
func New(req *tx.Request, a Analyzer, b *decision.Board, s Surface) *Controller {
	return &Controller{
		req:     req,
		oracle:  a,
		board:   b,
		surface: s,
		state:   StateLoading,
	}
}

// State returns the controller's current lifecycle position. Safe to call
// from other goroutines while Run is in flight.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) advance(ev Event) {
	c.mu.Lock()
	c.state, _ = Transition(c.state, ev)
	c.mu.Unlock()
}

// Run executes the modal lifecycle. Cancelling ctx tears the modal down:
// UI is released, any in-flight oracle result is discarded, and no verdict
// is ever written for this capture.
func (c *Controller) Run(ctx context.Context) {
	defer c.surface.Teardown()

	c.surface.ShowLoading(c.req)

	a, err := c.oracle.AnalyzeTransaction(ctx, c.req)
	if ctx.Err() != nil {
		// Superseded while the oracle call was in flight. The result, if
		// any, must not be rendered.
		return
	}

	if err != nil {
		metrics.OracleFailures.Inc()
		c.advance(EventFailure)
		c.surface.ShowError(c.req, err)
	} else {
		c.advance(EventAnalysis)
		c.surface.ShowResult(c.req, a)
	}

	d, err := c.surface.Decide(ctx)
	if err != nil || ctx.Err() != nil {
		// Torn down before a control was activated; this controller was
		// never granted a write.
		return
	}

	c.advance(EventDecision)
	// The slot may already be gone if the pending call timed out and failed
	// open; a late verdict is dropped on the floor, not retried.
	_ = c.board.Put(c.req.ID, d)
}
