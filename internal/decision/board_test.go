package decision

import (
	"errors"
	"testing"
)

func TestPutThenTake(t *testing.T) {
	b := NewBoard()
	b.Open("c1")

	if _, ok := b.TryTake("c1"); ok {
		t.Fatal("TryTake before Put should report no decision")
	}

	if err := b.Put("c1", Approve); err != nil {
		t.Fatalf("Put: %v", err)
	}

	d, ok := b.TryTake("c1")
	if !ok || d != Approve {
		t.Fatalf("TryTake = (%q, %v), want (approve, true)", d, ok)
	}

	// At-most-once consumption: the slot is gone.
	if _, ok := b.TryTake("c1"); ok {
		t.Error("second TryTake should find nothing")
	}
}

func TestPutWithoutOpen(t *testing.T) {
	b := NewBoard()
	if err := b.Put("nobody", Reject); !errors.Is(err, ErrSlotClosed) {
		t.Errorf("err = %v, want ErrSlotClosed", err)
	}
}

func TestDoublePut(t *testing.T) {
	b := NewBoard()
	b.Open("c1")
	if err := b.Put("c1", Reject); err != nil {
		t.Fatal(err)
	}
	if err := b.Put("c1", Approve); !errors.Is(err, ErrAlreadyDecided) {
		t.Errorf("err = %v, want ErrAlreadyDecided", err)
	}
	// The first verdict stands.
	d, ok := b.TryTake("c1")
	if !ok || d != Reject {
		t.Errorf("TryTake = (%q, %v), want (reject, true)", d, ok)
	}
}

func TestPutAfterClose(t *testing.T) {
	b := NewBoard()
	b.Open("c1")
	b.Close("c1")
	if err := b.Put("c1", Approve); !errors.Is(err, ErrSlotClosed) {
		t.Errorf("err = %v, want ErrSlotClosed", err)
	}
}

func TestInvalidDecision(t *testing.T) {
	b := NewBoard()
	b.Open("c1")
	if err := b.Put("c1", Decision("maybe")); err == nil {
		t.Error("expected error for invalid decision value")
	}
}

// Keyed slots cannot cross-consume: a verdict for one capture is invisible
// to another capture's poll loop.
func TestKeyedIsolation(t *testing.T) {
	b := NewBoard()
	b.Open("first")
	b.Open("second")

	if err := b.Put("second", Reject); err != nil {
		t.Fatal(err)
	}

	if _, ok := b.TryTake("first"); ok {
		t.Error("first capture consumed second capture's verdict")
	}
	d, ok := b.TryTake("second")
	if !ok || d != Reject {
		t.Errorf("TryTake(second) = (%q, %v), want (reject, true)", d, ok)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	b := NewBoard()
	b.Open("c1")
	if err := b.Put("c1", Approve); err != nil {
		t.Fatal(err)
	}
	b.Open("c1") // must not reset the filled slot
	d, ok := b.TryTake("c1")
	if !ok || d != Approve {
		t.Errorf("re-Open cleared a filled slot: (%q, %v)", d, ok)
	}
}
