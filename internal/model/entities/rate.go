package entities

// RateResult is the output of one rate computation.
// Invariant: Rate == Normalized.Min().
type RateResult struct {
	Rate       float64           `json:"rate"`
	Normalized NormalizedFactors `json:"normalized_factors"`
}

// LimitingFactorReport names the factor responsible for the minimum
// efficiency. Value equals that minimum.
type LimitingFactorReport struct {
	Factor   Factor   `json:"factor"`
	Severity Severity `json:"severity"`
	Value    float64  `json:"value"`
}

// Recommendation is a tiered corrective action for the limiting factor.
// TargetValue is nil when the factor only needs to be held where it is.
type Recommendation struct {
	Action      string   `json:"action"`
	TargetValue *float64 `json:"target_value"`
	Priority    Priority `json:"priority"`
	AppliesTo   Factor   `json:"applies_to"`
}

// ValidationResult says whether a proposed change to a factor would
// actually raise the photosynthesis rate.
type ValidationResult struct {
	WillImprove bool   `json:"will_improve"`
	Reason      string `json:"reason"`
}
