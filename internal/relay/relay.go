// Package relay is the message pump in the boundary context. It consumes
// capture events strictly in emission order, rejects events from foreign
// origins, and keeps exactly one decision surface alive: a newer capture
// tears down whatever modal is currently showing.
package relay

import (
	"context"
	"fmt"
	"os"

	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/metrics"
	"github.com/walletgate/walletgate/internal/modal"
	"github.com/walletgate/walletgate/internal/tx"
)

// eventBuffer bounds the capture queue. A full queue drops the capture; the
// orphaned pending call fails open at its own deadline, same as a superseded
// one.
const eventBuffer = 16

// SurfaceFactory builds a fresh decision surface for one controller.
type SurfaceFactory func() modal.Surface

// Relay dispatches capture events to modal controllers, last-write-wins.
type Relay struct {
	origin   string
	oracle   modal.Analyzer
	board    *decision.Board
	surfaces SurfaceFactory
	events   chan tx.Capture
}

// New creates a Relay for the given origin. Events whose origin differs are
// discarded without teardown side effects.
func New(origin string, a modal.Analyzer, b *decision.Board, surfaces SurfaceFactory) *Relay {
	return &Relay{
		origin:   origin,
		oracle:   a,
		board:    b,
		surfaces: surfaces,
		events:   make(chan tx.Capture, eventBuffer),
	}
}

// Enqueue submits a capture event. It never blocks the caller: if the queue
// is full the event is dropped and the pending call is left to its deadline.
func (r *Relay) Enqueue(c tx.Capture) {
	select {
	case r.events <- c:
	default:
		fmt.Fprintf(os.Stderr, "walletgate: capture queue full, dropping %s\n", c.Request.ID)
	}
}

// Run pumps capture events until ctx is cancelled. Blocks. On return every
// controller it started has finished tearing down.
func (r *Relay) Run(ctx context.Context) {
	var cancel context.CancelFunc
	var done chan struct{}

	teardown := func() {
		if cancel == nil {
			return
		}
		cancel()
		<-done
		cancel = nil
	}
	defer teardown()

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-r.events:
			if ev.Origin != r.origin {
				metrics.ForeignOrigin.Inc()
				continue
			}

			if cancel != nil {
				select {
				case <-done: // previous modal already resolved
				default:
					metrics.Superseded.Inc()
				}
			}
			teardown()

			cctx, c := context.WithCancel(ctx)
			cancel = c
			d := make(chan struct{})
			done = d

			ctrl := modal.New(ev.Request, r.oracle, r.board, r.surfaces())
			go func() {
				ctrl.Run(cctx)
				close(d)
			}()
		}
	}
}
