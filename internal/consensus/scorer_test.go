package consensus

import (
	"testing"

	"veridex/internal/model"
)

func TestScoreConfidence_EmptyTally(t *testing.T) {
	if got := scoreConfidence(model.OutcomeUncertain, tallyOf(0, 0, 0), nil, nil); got != 0 {
		t.Errorf("expected 0 for empty tally, got %d", got)
	}
}

func TestScoreConfidence_UncertainVerdictCapped(t *testing.T) {
	// Unanimous uncertainty would be 100; the cap holds it at 70
	if got := scoreConfidence(model.OutcomeUncertain, tallyOf(0, 0, 5), nil, nil); got != 70 {
		t.Errorf("expected cap of 70, got %d", got)
	}

	// 2 of 5 uncertain: 40, under the cap
	if got := scoreConfidence(model.OutcomeUncertain, tallyOf(3, 0, 2), nil, nil); got != 40 {
		t.Errorf("expected 40, got %d", got)
	}

	// Tie-break verdict with zero uncertain votes scores zero
	if got := scoreConfidence(model.OutcomeUncertain, tallyOf(2, 2, 0), nil, nil); got != 0 {
		t.Errorf("expected 0 for tie with no uncertain votes, got %d", got)
	}
}

func TestScoreConfidence_UnanimousAgreement(t *testing.T) {
	if got := scoreConfidence(model.OutcomeTrue, tallyOf(4, 0, 0), nil, nil); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestScoreConfidence_UncertaintyPenalty(t *testing.T) {
	// 4 TRUE + 1 uncertain: base 80, penalty 6, result 74
	if got := scoreConfidence(model.OutcomeTrue, tallyOf(4, 0, 1), nil, nil); got != 74 {
		t.Errorf("expected 74, got %d", got)
	}
}

func TestScoreConfidence_PenaltyFloor(t *testing.T) {
	// A heavily penalized score stops at the floor of 40. This tally is
	// not reachable through resolveVerdict; the scorer contract alone is
	// under test.
	if got := scoreConfidence(model.OutcomeTrue, tallyOf(1, 0, 2), nil, nil); got != 40 {
		t.Errorf("expected floor of 40, got %d", got)
	}
}

func TestScoreConfidence_NoFloorWithoutPenalty(t *testing.T) {
	// Score below 40 with zero uncertainty present must not be raised
	if got := scoreConfidence(model.OutcomeTrue, tallyOf(1, 3, 0), nil, nil); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
}

func TestScoreConfidence_PolicyAlignedBonusPath(t *testing.T) {
	// Under the current classification a policy-limited source is always
	// recorded as POLICY_LIMITED, so alignment is structurally zero. The
	// formula still honors an aligned entry if the judgment map carries
	// one; verified here directly so the path stays correct.
	judgments := map[string]model.Outcome{
		"a":  model.OutcomeTrue,
		"b":  model.OutcomeTrue,
		"c":  model.OutcomeFalse,
		"p1": model.OutcomeTrue, // hypothetical aligned policy-limited source
	}
	tl := tallyOf(2, 1, 0)

	// base = 100*(2-1)/2 = 50, bonus = 20*1/3 = 6.67, total 56.67 -> 57
	if got := scoreConfidence(model.OutcomeTrue, tl, []string{"p1"}, judgments); got != 57 {
		t.Errorf("expected 57, got %d", got)
	}
}

func TestScoreConfidence_AllPolicyFallback(t *testing.T) {
	// Every substantive source policy-limited: nonPolicyTotal hits zero
	// and the 90%-scaled fallback applies. Structurally impossible today
	// but part of the scoring contract.
	tl := tallyOf(2, 0, 0)
	if got := scoreConfidence(model.OutcomeTrue, tl, []string{"x", "y"}, map[string]model.Outcome{}); got != 90 {
		t.Errorf("expected 90 via fallback, got %d", got)
	}
}

func TestScoreConfidence_PolicyAlignedIsZeroInPractice(t *testing.T) {
	// Realistic shape: policy-limited sources carry POLICY_LIMITED in the
	// judgment map, so no bonus applies and the base is computed over the
	// non-policy denominator.
	judgments := map[string]model.Outcome{
		"a": model.OutcomeTrue,
		"b": model.OutcomeTrue,
		"p": model.OutcomePolicyLimited,
	}
	tl := newTally(judgments)

	// total = 2, nonPolicyTotal = 1, base = 100*2/1 capped at 100
	if got := scoreConfidence(model.OutcomeTrue, tl, []string{"p"}, judgments); got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}

func TestLabelForConfidence_Bounds(t *testing.T) {
	tests := []struct {
		pct  int
		want model.ConfidenceLabel
	}{
		{100, model.LabelVeryHigh},
		{90, model.LabelVeryHigh},
		{89, model.LabelHigh},
		{70, model.LabelHigh},
		{69, model.LabelMedium},
		{50, model.LabelMedium},
		{49, model.LabelLow},
		{30, model.LabelLow},
		{29, model.LabelVeryLow},
		{0, model.LabelVeryLow},
	}

	for _, tt := range tests {
		if got := model.LabelForConfidence(tt.pct); got != tt.want {
			t.Errorf("LabelForConfidence(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}
