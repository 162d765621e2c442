package resolve

// Tier represents the preference level of a candidate alternative for a
// given input type.
type Tier int

const (
	// TierIneligible means the alternative cannot accept the input at all.
	TierIneligible Tier = iota
	// TierUserConversion means a registered conversion function accepts the input.
	TierUserConversion
	// TierSafeWidening means a same-category widening carries the input without loss.
	TierSafeWidening
	// TierExact means the input type is identical to the alternative type.
	TierExact
)

const (
	VerdictExact          = "exact"
	VerdictSafeWidening   = "safe_widening"
	VerdictUserConversion = "user_conversion"
	VerdictIneligible     = "ineligible"
)

// String returns a human-readable name for the tier.
func (t Tier) String() string {
	switch t {
	case TierExact:
		return VerdictExact
	case TierSafeWidening:
		return VerdictSafeWidening
	case TierUserConversion:
		return VerdictUserConversion
	case TierIneligible:
		return VerdictIneligible
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (t Tier) Score() int {
	return int(t)
}
