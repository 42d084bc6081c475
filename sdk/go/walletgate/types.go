package walletgate

import (
	"context"
	"fmt"

	"github.com/walletgate/walletgate/internal/tx"
)

// Provider is the request-style entry point a page uses to talk to a wallet.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (any, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, method string, params ...any) (any, error)

// Request calls f.
func (f ProviderFunc) Request(ctx context.Context, method string, params ...any) (any, error) {
	return f(ctx, method, params...)
}

// Emitter receives capture events from the guard. *relay.Relay implements it.
type Emitter interface {
	Enqueue(c tx.Capture)
}

// RejectedError is returned when the user rejects a captured transaction.
// It is distinguishable from any error the underlying provider produces, so
// callers can tell "blocked by security check" from "blocked by wallet".
type RejectedError struct {
	Request *tx.Request
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("walletgate: %s rejected by security check", e.Request.Method)
}
