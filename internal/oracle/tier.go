package oracle

import "fmt"

// Tier is the coarse risk bucket derived from a continuous scam probability.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Tier thresholds. LOW is strictly below lowMax; probabilities up to and
// including highMin are MEDIUM; anything above is HIGH.
const (
	lowMax  = 0.4
	highMin = 0.7
)

// TierFor maps a scam probability in [0,1] to a risk tier.
func TierFor(p float64) Tier {
	switch {
	case p < lowMax:
		return TierLow
	case p <= highMin:
		return TierMedium
	default:
		return TierHigh
	}
}

// String returns the tier label used in rendered output.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "LOW"
	case TierMedium:
		return "MEDIUM"
	case TierHigh:
		return "HIGH"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}
