// Package walletgate provides in-process transaction gating for wallet
// providers. It wraps a provider's request entry point, captures
// transaction-signing calls, routes them to a remote risk-scoring service
// through a relay, and suspends the original call until a human approves or
// rejects it — failing open after a fixed deadline so an unreachable decision
// surface can never wedge the page.
//
// Usage:
//
//	board := decision.NewBoard()
//	r := relay.New("my-page", oracleClient, board, surfaces)
//	go r.Run(ctx)
//
//	guarded := walletgate.Wrap(provider, board, r)
//	result, err := guarded.Request(ctx, "eth_sendTransaction", txParams)
//
// Wrapping is idempotent: wrapping a *Guard returns it unchanged. Methods
// outside the monitored set pass through verbatim.
package walletgate
