package alert

import "time"

// Dispatcher fans out alert events to matching webhook configurations.
type Dispatcher struct {
	configs []Config
}

// NewDispatcher creates a Dispatcher from webhook configurations.
// Returns nil if configs is empty (callers should nil-check).
func NewDispatcher(configs []Config) *Dispatcher {
	if len(configs) == 0 {
		return nil
	}
	return &Dispatcher{configs: configs}
}

// Dispatch sends the event to all webhooks whose Events list matches the
// event's outcome. Fires goroutines — does not block the caller, which is
// inside a suspended provider call.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	for _, cfg := range d.configs {
		if matches(cfg.Events, event.Outcome) {
			go Send(cfg, event)
		}
	}
}

func matches(events []string, outcome string) bool {
	for _, e := range events {
		if e == outcome {
			return true
		}
	}
	return false
}
