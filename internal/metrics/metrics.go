// Package metrics exposes interception counters in Prometheus format.
// Metrics live in a dedicated registry so the default global registry stays
// untouched.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Decision outcome labels.
const (
	OutcomeApprove  = "approve"
	OutcomeReject   = "reject"
	OutcomeFailOpen = "failopen"
)

var registry = prometheus.NewRegistry()

var (
	// Captures counts monitored calls that produced a capture event.
	Captures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "walletgate",
		Name:      "captures_total",
		Help:      "Monitored provider calls captured for analysis.",
	})

	// Decisions counts resolved pending calls by outcome.
	Decisions = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletgate",
		Name:      "decisions_total",
		Help:      "Resolved pending calls by outcome.",
	}, []string{"outcome"})

	// OracleFailures counts scoring requests that errored.
	OracleFailures = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "walletgate",
		Name:      "oracle_failures_total",
		Help:      "Risk oracle calls that failed.",
	})

	// Superseded counts modals torn down by a newer capture.
	Superseded = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "walletgate",
		Name:      "superseded_total",
		Help:      "Decision surfaces replaced by a newer capture.",
	})

	// ForeignOrigin counts capture events dropped by the origin check.
	ForeignOrigin = promauto.With(registry).NewCounter(prometheus.CounterOpts{
		Namespace: "walletgate",
		Name:      "foreign_origin_total",
		Help:      "Capture events rejected for originating elsewhere.",
	})
)

// Handler serves the walletgate registry in exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
