package relay

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/walletgate/walletgate/internal/decision"
	"github.com/walletgate/walletgate/internal/modal"
	"github.com/walletgate/walletgate/internal/oracle"
	"github.com/walletgate/walletgate/internal/tx"
)

type slowAnalyzer struct {
	delay time.Duration
}

func (s *slowAnalyzer) AnalyzeTransaction(ctx context.Context, req *tx.Request) (*oracle.Analysis, error) {
	select {
	case <-time.After(s.delay):
		return &oracle.Analysis{ScamProbability: 0.1}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// recordingSurface notes which capture it showed and whether it was torn down.
type recordingSurface struct {
	mu       sync.Mutex
	shownID  string
	torn     bool
	decideCh chan decision.Decision
}

func (s *recordingSurface) ShowLoading(req *tx.Request) {
	s.mu.Lock()
	s.shownID = req.ID
	s.mu.Unlock()
}
func (s *recordingSurface) ShowResult(req *tx.Request, a *oracle.Analysis) {}
func (s *recordingSurface) ShowError(req *tx.Request, err error)          {}
func (s *recordingSurface) Teardown() {
	s.mu.Lock()
	s.torn = true
	s.mu.Unlock()
}

func (s *recordingSurface) Decide(ctx context.Context) (decision.Decision, error) {
	select {
	case d := <-s.decideCh:
		return d, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *recordingSurface) snapshot() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shownID, s.torn
}

func capture(origin, id string) tx.Capture {
	return tx.Capture{
		Origin: origin,
		Request: &tx.Request{
			ID:     id,
			Method: tx.MethodSendTransaction,
			To:     "0x1",
			Value:  "0x0",
		},
	}
}

func newTestRelay(t *testing.T) (*Relay, *decision.Board, func() []*recordingSurface) {
	t.Helper()
	b := decision.NewBoard()
	var mu sync.Mutex
	var surfaces []*recordingSurface
	factory := func() modal.Surface {
		s := &recordingSurface{decideCh: make(chan decision.Decision)}
		mu.Lock()
		surfaces = append(surfaces, s)
		mu.Unlock()
		return s
	}
	r := New("page-1", &slowAnalyzer{delay: 5 * time.Millisecond}, b, factory)
	all := func() []*recordingSurface {
		mu.Lock()
		defer mu.Unlock()
		out := make([]*recordingSurface, len(surfaces))
		copy(out, surfaces)
		return out
	}
	return r, b, all
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestForeignOriginDropped(t *testing.T) {
	r, _, all := newTestRelay(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { r.Run(ctx); close(done) }()

	r.Enqueue(capture("evil-frame", "c1"))
	time.Sleep(30 * time.Millisecond)
	if n := len(all()); n != 0 {
		t.Errorf("foreign-origin capture spawned %d surfaces", n)
	}

	cancel()
	<-done
}

func TestSecondCaptureSupersedesFirst(t *testing.T) {
	r, b, all := newTestRelay(t)
	b.Open("c1")
	b.Open("c2")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { r.Run(ctx); close(done) }()

	r.Enqueue(capture("page-1", "c1"))
	waitFor(t, func() bool { return len(all()) == 1 })

	r.Enqueue(capture("page-1", "c2"))
	waitFor(t, func() bool { return len(all()) == 2 })

	// First surface torn down, never decided; second is the visible one.
	waitFor(t, func() bool { _, torn := all()[0].snapshot(); return torn })
	id, _ := all()[1].snapshot()
	if id != "c2" {
		t.Errorf("visible surface shows %q, want c2", id)
	}

	// The superseded capture's slot holds no verdict: it will fail open at
	// its own deadline, not via a decision write.
	if _, ok := b.TryTake("c1"); ok {
		t.Error("superseded capture received a verdict")
	}

	cancel()
	<-done
}

func TestDecisionFlowsToBoard(t *testing.T) {
	r, b, all := newTestRelay(t)
	b.Open("c1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { r.Run(ctx); close(done) }()

	r.Enqueue(capture("page-1", "c1"))
	waitFor(t, func() bool { return len(all()) == 1 })

	all()[0].decideCh <- decision.Reject
	waitFor(t, func() bool {
		_, torn := all()[0].snapshot()
		return torn
	})

	d, ok := b.TryTake("c1")
	if !ok || d != decision.Reject {
		t.Errorf("board = (%q, %v), want (reject, true)", d, ok)
	}

	cancel()
	<-done
}

func TestStrictEmissionOrder(t *testing.T) {
	r, _, all := newTestRelay(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() { r.Run(ctx); close(done) }()

	for _, id := range []string{"a", "b", "c"} {
		r.Enqueue(capture("page-1", id))
	}
	waitFor(t, func() bool { return len(all()) == 3 })

	surfaces := all()
	for i, want := range []string{"a", "b", "c"} {
		waitFor(t, func() bool { id, _ := surfaces[i].snapshot(); return id == want })
	}

	cancel()
	<-done
}
