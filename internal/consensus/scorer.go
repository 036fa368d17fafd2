package consensus

import (
	"math"

	"veridex/internal/model"
)

// uncertainCap bounds confidence for an UNCERTAIN verdict: the system
// never claims high confidence in "we don't know"
const uncertainCap = 70.0

// scoreConfidence computes the 0-100 confidence percentage for a resolved
// verdict. Arithmetic is floating point throughout; rounding happens once
// at the return.
func scoreConfidence(verdict model.Outcome, t tally, policyLimited []string, judgments map[string]model.Outcome) int {
	if t.total == 0 {
		return 0
	}

	uncertain := t.counts[model.OutcomeUncertain]

	if verdict == model.OutcomeUncertain {
		confidence := 100 * float64(uncertain) / float64(t.total)
		if confidence > uncertainCap {
			confidence = uncertainCap
		}
		return clampPercent(confidence)
	}

	agreement := t.counts[verdict]

	// Count policy-limited sources whose recorded outcome matches the
	// verdict. A policy-limited source is always recorded as
	// POLICY_LIMITED, so this is zero under the current classification;
	// the branch is kept because the nonPolicyTotal fallback below
	// depends on the split. Flagged for product review before changing.
	policyAligned := 0
	for _, id := range policyLimited {
		if judgments[id] == verdict {
			policyAligned++
		}
	}

	var confidence float64
	nonPolicyTotal := t.total - len(policyLimited)
	if nonPolicyTotal > 0 {
		base := 100 * float64(agreement-policyAligned) / float64(nonPolicyTotal)
		bonus := 20 * float64(policyAligned) / float64(t.total)
		confidence = base + bonus
		if confidence > 100 {
			confidence = 100
		}
	} else {
		confidence = 90 * float64(agreement) / float64(t.total)
	}

	// Hedged responses drag confidence down, but a penalized score never
	// drops below 40. Scores already below 40 without any uncertainty
	// present are left alone.
	if uncertain > 0 {
		confidence -= 30 * float64(uncertain) / float64(t.total)
		if confidence < 40 {
			confidence = 40
		}
	}

	return clampPercent(confidence)
}

func clampPercent(v float64) int {
	pct := int(math.Round(v))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
