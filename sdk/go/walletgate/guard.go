package walletgate

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/walletgate/walletgate/internal/alert"
	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/metrics"
	"github.com/walletgate/walletgate/internal/tx"
)

// Guard decorates a Provider with transaction interception. It implements
// Provider itself, so it composes like any other provider.
type Guard struct {
	next    Provider
	board   *decision.Board
	emitter Emitter
	cfg     guardConfig
}

// Wrap returns a Guard around p. Wrapping an existing *Guard returns it
// unchanged, so installing the interceptor twice is a no-op the second time.
func Wrap(p Provider, board *decision.Board, emitter Emitter, opts ...Option) *Guard {
	if g, ok := p.(*Guard); ok {
		return g
	}

	cfg := guardConfig{
		origin:   "walletgate",
		poll:     PollInterval,
		deadline: DecisionTimeout,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return &Guard{
		next:    p,
		board:   board,
		emitter: emitter,
		cfg:     cfg,
	}
}

// Request intercepts monitored transaction-signing methods and forwards
// everything else verbatim.
//
// A monitored call suspends until a verdict is observed or the fail-open
// deadline elapses. Approval and timeout both forward the call with its
// unmodified original arguments; rejection fails the call with a
// *RejectedError and never touches the wrapped provider.
func (g *Guard) Request(ctx context.Context, method string, params ...any) (any, error) {
	if !tx.Monitored(method) {
		return g.next.Request(ctx, method, params...)
	}

	req, err := tx.FromParams(method, params)
	if err != nil {
		// Malformed capture: no transaction-shaped argument. Treated as
		// pass-through, no capture emitted.
		return g.next.Request(ctx, method, params...)
	}

	g.board.Open(req.ID)
	defer g.board.Close(req.ID)

	g.emitter.Enqueue(tx.Capture{Origin: g.cfg.origin, Request: req})
	metrics.Captures.Inc()

	ticker := time.NewTicker(g.cfg.poll)
	defer ticker.Stop()
	deadline := time.NewTimer(g.cfg.deadline)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-deadline.C:
			// Fail open: inability to decide must never block the page's
			// underlying call forever.
			fmt.Fprintf(os.Stderr, "walletgate: no decision for %s within %s, failing open\n",
				req.ID, g.cfg.deadline)
			metrics.Decisions.WithLabelValues(metrics.OutcomeFailOpen).Inc()
			g.notify(req, metrics.OutcomeFailOpen, "decision deadline elapsed")
			return g.next.Request(ctx, method, params...)

		case <-ticker.C:
			d, ok := g.board.TryTake(req.ID)
			if !ok {
				continue
			}
			if d == decision.Reject {
				metrics.Decisions.WithLabelValues(metrics.OutcomeReject).Inc()
				g.notify(req, metrics.OutcomeReject, "rejected by security check")
				return nil, &RejectedError{Request: req}
			}
			metrics.Decisions.WithLabelValues(metrics.OutcomeApprove).Inc()
			return g.next.Request(ctx, method, params...)
		}
	}
}

func (g *Guard) notify(req *tx.Request, outcome, reason string) {
	g.cfg.alerts.Dispatch(alert.Event{
		CaptureID: req.ID,
		Outcome:   outcome,
		Method:    req.Method,
		From:      req.From,
		To:        req.To,
		Value:     req.Value,
		Reason:    reason,
	})
}
