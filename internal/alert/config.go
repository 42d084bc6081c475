// Package alert posts interception outcomes to webhook endpoints. Useful for
// noticing when a page keeps getting rejected, or when pending calls are
// silently failing open against an unreachable oracle.
package alert

// Config defines a webhook alert destination.
type Config struct {
	URL     string            `yaml:"url"     json:"url"`
	Format  string            `yaml:"format"  json:"format"` // "generic", "slack"
	Events  []string          `yaml:"events"  json:"events"` // ["reject", "failopen"]
	Headers map[string]string `yaml:"headers" json:"headers"`
}

// Event is the payload sent to webhook endpoints.
type Event struct {
	Timestamp string `json:"timestamp"`
	CaptureID string `json:"capture_id"`
	Outcome   string `json:"outcome"` // "reject" or "failopen"
	Method    string `json:"method"`
	From      string `json:"from"`
	To        string `json:"to"`
	Value     string `json:"value"`
	RiskTier  string `json:"risk_tier,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
