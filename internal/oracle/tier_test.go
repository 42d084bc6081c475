package oracle

import "testing"

func TestTierFor(t *testing.T) {
	tests := []struct {
		p    float64
		want Tier
	}{
		{0.0, TierLow},
		{0.39, TierLow},
		{0.4, TierMedium},
		{0.55, TierMedium},
		{0.7, TierMedium},
		{0.71, TierHigh},
		{0.85, TierHigh},
		{1.0, TierHigh},
	}
	for _, tt := range tests {
		if got := TierFor(tt.p); got != tt.want {
			t.Errorf("TierFor(%v) = %s, want %s", tt.p, got, tt.want)
		}
	}
}

func TestTierString(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{TierLow, "LOW"},
		{TierMedium, "MEDIUM"},
		{TierHigh, "HIGH"},
		{Tier(9), "unknown(9)"},
	}
	for _, tt := range tests {
		if got := tt.tier.String(); got != tt.want {
			t.Errorf("Tier(%d).String() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
}
