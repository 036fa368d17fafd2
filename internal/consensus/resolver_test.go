package consensus

import (
	"testing"

	"veridex/internal/model"
)

func tallyOf(trueCount, falseCount, uncertainCount int) tally {
	t := tally{counts: map[model.Outcome]int{
		model.OutcomeTrue:      trueCount,
		model.OutcomeFalse:     falseCount,
		model.OutcomeUncertain: uncertainCount,
	}}
	t.total = trueCount + falseCount + uncertainCount
	return t
}

func TestResolveVerdict(t *testing.T) {
	tests := []struct {
		name string
		t    tally
		want model.Outcome
	}{
		{"empty tally", tallyOf(0, 0, 0), model.OutcomeUncertain},
		{"clear true majority", tallyOf(3, 1, 0), model.OutcomeTrue},
		{"clear false majority", tallyOf(1, 3, 0), model.OutcomeFalse},
		{"exact tie", tallyOf(2, 2, 0), model.OutcomeUncertain},
		{"one uncertain of three hits third threshold", tallyOf(2, 0, 1), model.OutcomeUncertain},
		{"one uncertain of four stays decisive", tallyOf(3, 0, 1), model.OutcomeTrue},
		{"two uncertain of five hits absolute threshold", tallyOf(3, 0, 2), model.OutcomeUncertain},
		{"single true vote", tallyOf(1, 0, 0), model.OutcomeTrue},
		{"single uncertain vote", tallyOf(0, 0, 1), model.OutcomeUncertain},
	}

	for _, tt := range tests {
		if got := resolveVerdict(tt.t); got != tt.want {
			t.Errorf("%s: resolveVerdict = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestResolveVerdict_Deterministic(t *testing.T) {
	// Same input must resolve identically every time
	in := tallyOf(3, 2, 1)
	first := resolveVerdict(in)
	for i := 0; i < 50; i++ {
		if got := resolveVerdict(in); got != first {
			t.Fatalf("nondeterministic resolution: %s then %s", first, got)
		}
	}
}

func TestNewTally_ExcludesNonSubstantive(t *testing.T) {
	judgments := map[string]model.Outcome{
		"a": model.OutcomeTrue,
		"b": model.OutcomeFalse,
		"c": model.OutcomeRecuse,
		"d": model.OutcomePolicyLimited,
		"e": model.OutcomeUncertain,
	}

	tl := newTally(judgments)

	if tl.total != 3 {
		t.Errorf("expected substantive total 3, got %d", tl.total)
	}
	if tl.counts[model.OutcomeRecuse] != 0 || tl.counts[model.OutcomePolicyLimited] != 0 {
		t.Errorf("non-substantive outcomes leaked into tally: %v", tl.counts)
	}
}
