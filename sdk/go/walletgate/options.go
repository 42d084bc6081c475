package walletgate

import (
	"time"

	"github.com/walletgate/walletgate/internal/alert"
)

// Protocol constants. The poll cadence and fail-open deadline are fixed per
// call; they can be overridden only when the guard is constructed, which
// tests use to avoid minute-long waits.
const (
	PollInterval    = 100 * time.Millisecond
	DecisionTimeout = 60 * time.Second
)

// Option configures a Guard at creation time.
type Option func(*guardConfig)

type guardConfig struct {
	origin   string
	poll     time.Duration
	deadline time.Duration
	alerts   *alert.Dispatcher
}

// WithOrigin sets the origin tag carried on capture events. The relay drops
// events whose origin does not match its own.
func WithOrigin(origin string) Option {
	return func(c *guardConfig) { c.origin = origin }
}

// WithPollInterval overrides the decision poll cadence.
func WithPollInterval(d time.Duration) Option {
	return func(c *guardConfig) { c.poll = d }
}

// WithDecisionTimeout overrides the fail-open deadline.
func WithDecisionTimeout(d time.Duration) Option {
	return func(c *guardConfig) { c.deadline = d }
}

// WithAlerts attaches a webhook dispatcher notified on reject and fail-open
// outcomes.
func WithAlerts(d *alert.Dispatcher) Option {
	return func(c *guardConfig) { c.alerts = d }
}
