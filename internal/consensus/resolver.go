package consensus

import "veridex/internal/model"

// tally holds per-outcome counts over the substantive subset of the
// judgment map. RECUSE and POLICY_LIMITED entries never enter the tally:
// they are reported but carry no vote.
type tally struct {
	counts map[model.Outcome]int
	total  int
}

func newTally(judgments map[string]model.Outcome) tally {
	t := tally{counts: make(map[model.Outcome]int, 3)}
	for _, outcome := range judgments {
		if !outcome.IsSubstantive() {
			continue
		}
		t.counts[outcome]++
		t.total++
	}
	return t
}

// substantiveOrder is the fixed tie-break enumeration for rule 4
var substantiveOrder = []model.Outcome{
	model.OutcomeTrue,
	model.OutcomeFalse,
	model.OutcomeUncertain,
}

// resolveVerdict reduces the tally to a single verdict. The verdict is
// always TRUE, FALSE, or UNCERTAIN.
//
// Rules, in order:
//  1. no substantive votes at all: UNCERTAIN by convention
//  2. uncertain votes reach a third of the tally, or two in absolute
//     terms: UNCERTAIN
//  3. exact TRUE/FALSE tie with at least one vote each: UNCERTAIN
//  4. otherwise the strictly highest count wins, ties broken by the fixed
//     order TRUE, FALSE, UNCERTAIN
func resolveVerdict(t tally) model.Outcome {
	if t.total == 0 {
		return model.OutcomeUncertain
	}

	uncertain := t.counts[model.OutcomeUncertain]
	if float64(uncertain) >= float64(t.total)/3.0 || uncertain >= 2 {
		return model.OutcomeUncertain
	}

	if t.counts[model.OutcomeTrue] == t.counts[model.OutcomeFalse] && t.counts[model.OutcomeTrue] > 0 {
		return model.OutcomeUncertain
	}

	verdict := model.OutcomeUncertain
	best := -1
	for _, outcome := range substantiveOrder {
		if t.counts[outcome] > best {
			best = t.counts[outcome]
			verdict = outcome
		}
	}
	return verdict
}
