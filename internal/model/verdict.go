package model

// SourceResponse is one model's raw answer to a claim, as delivered by the
// query layer. The consensus engine consumes these read-only.
type SourceResponse struct {
	SourceID     string `json:"source_id"`
	Succeeded    bool   `json:"succeeded"`
	Text         string `json:"text,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Outcome is the categorical classification of a single response
type Outcome string

const (
	OutcomeTrue          Outcome = "TRUE"
	OutcomeFalse         Outcome = "FALSE"
	OutcomeUncertain     Outcome = "UNCERTAIN"
	OutcomeRecuse        Outcome = "RECUSE"         // Declined on logical grounds (paradox, self-reference)
	OutcomePolicyLimited Outcome = "POLICY_LIMITED" // Declined on safety/content-policy grounds
)

// IsSubstantive reports whether the outcome is eligible to vote in the
// majority resolution. RECUSE and POLICY_LIMITED are reported but never
// counted. The switch is exhaustive on purpose: a new outcome must be
// placed in one of the two buckets here before aggregation will accept it.
func (o Outcome) IsSubstantive() bool {
	switch o {
	case OutcomeTrue, OutcomeFalse, OutcomeUncertain:
		return true
	case OutcomeRecuse, OutcomePolicyLimited:
		return false
	}
	return false
}

// Valid reports whether o is one of the five known outcomes
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeTrue, OutcomeFalse, OutcomeUncertain, OutcomeRecuse, OutcomePolicyLimited:
		return true
	}
	return false
}

func (o Outcome) String() string {
	return string(o)
}

// ConfidenceLabel buckets a confidence percentage for display
type ConfidenceLabel string

const (
	LabelVeryHigh ConfidenceLabel = "VERY_HIGH"
	LabelHigh     ConfidenceLabel = "HIGH"
	LabelMedium   ConfidenceLabel = "MEDIUM"
	LabelLow      ConfidenceLabel = "LOW"
	LabelVeryLow  ConfidenceLabel = "VERY_LOW"
)

// LabelForConfidence maps a confidence percentage to its label.
// Lower bounds are inclusive.
func LabelForConfidence(pct int) ConfidenceLabel {
	switch {
	case pct >= 90:
		return LabelVeryHigh
	case pct >= 70:
		return LabelHigh
	case pct >= 50:
		return LabelMedium
	case pct >= 30:
		return LabelLow
	default:
		return LabelVeryLow
	}
}

// ConsensusResult is the aggregate verdict over all source responses.
// Constructed once per analysis; maps and slices are always initialized so
// the serialized form is stable ({} and [] rather than null).
type ConsensusResult struct {
	Verdict              Outcome            `json:"verdict"`
	ConfidencePercentage int                `json:"confidence_percentage"`
	ConfidenceLevel      ConfidenceLabel    `json:"confidence_level"`
	Judgments            map[string]Outcome `json:"model_judgments"`
	PolicyLimitedSources []string           `json:"policy_limited_responses"`
	UncertainSources     []string           `json:"uncertain_responses"`
}
