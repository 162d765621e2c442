package resolve

import "testing"

func TestTier_String(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected string
	}{
		{TierExact, "exact"},
		{TierSafeWidening, "safe_widening"},
		{TierUserConversion, "user_conversion"},
		{TierIneligible, "ineligible"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tier.String(); got != tt.expected {
				t.Errorf("Tier.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTier_Score(t *testing.T) {
	// Verify ordering
	if TierIneligible.Score() >= TierUserConversion.Score() {
		t.Error("TierIneligible should have lower score than TierUserConversion")
	}
	if TierUserConversion.Score() >= TierSafeWidening.Score() {
		t.Error("TierUserConversion should have lower score than TierSafeWidening")
	}
	if TierSafeWidening.Score() >= TierExact.Score() {
		t.Error("TierSafeWidening should have lower score than TierExact")
	}
}
