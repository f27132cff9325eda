package dto

// Outcome tells callers how a pipeline result was produced, so "genuine
// success", "served from cache" and "degraded but served" stay
// distinguishable instead of being uniformly masked.
type Outcome string

const (
	OutcomeGenerated Outcome = "generated"
	OutcomeCached    Outcome = "cached"
	OutcomeDegraded  Outcome = "degraded"
)
