// Package decision implements the synchronization primitive that carries a
// human approve/reject verdict from the decision surface back into the
// suspended provider call. Slots are keyed by capture correlation ID so two
// concurrent pending calls can never consume each other's verdict.
package decision

import (
	"errors"
	"fmt"
	"sync"
)

// Decision is a binary human verdict on a captured transaction.
type Decision string

const (
	Approve Decision = "approve"
	Reject  Decision = "reject"
)

// Errors returned by Board writes.
var (
	ErrSlotClosed     = errors.New("decision slot is closed")
	ErrAlreadyDecided = errors.New("decision already recorded")
)

// Board holds one single-use decision slot per pending capture.
//
// The waiting side opens a slot, polls it with TryTake, and closes it when
// it gives up. The deciding side writes exactly once with Put. A write to a
// slot that was never opened, already consumed, or closed fails — a torn-
// down controller cannot smuggle a verdict into a later capture.
type Board struct {
	mu    sync.Mutex
	slots map[string]*slot
}

type slot struct {
	filled bool
	d      Decision
}

// NewBoard creates an empty Board.
func NewBoard() *Board {
	return &Board{slots: make(map[string]*slot)}
}

// Open registers a slot for the given capture ID. Opening an existing slot
// is a no-op: the slot belongs to whoever opened it first.
func (b *Board) Open(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.slots[id]; !ok {
		b.slots[id] = &slot{}
	}
}

// Close discards the slot for the given capture ID. Called by the waiting
// side on timeout or cancellation; any verdict written later errors out
// harmlessly.
func (b *Board) Close(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, id)
}

// Put records a verdict for the given capture ID. At most one write per
// slot ever succeeds.
func (b *Board) Put(id string, d Decision) error {
	if d != Approve && d != Reject {
		return fmt.Errorf("invalid decision %q", d)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.slots[id]
	if !ok {
		return ErrSlotClosed
	}
	if s.filled {
		return ErrAlreadyDecided
	}
	s.filled = true
	s.d = d
	return nil
}

// TryTake observes and atomically clears the verdict for the given capture
// ID, if one has been written. The second return value reports whether a
// verdict was present.
func (b *Board) TryTake(id string) (Decision, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.slots[id]
	if !ok || !s.filled {
		return "", false
	}
	delete(b.slots, id)
	return s.d, true
}
