package consensus

import (
	"sort"

	"veridex/internal/model"
	"veridex/internal/normalize"
)

// judgmentSet is the intermediate partition of source responses
type judgmentSet struct {
	judgments     map[string]model.Outcome
	policyLimited []string
	uncertain     []string
}

// extractJudgments classifies every answered source. Sources that failed
// or returned empty text are skipped entirely: absence from the judgment
// map is the signal of a failed upstream query, distinct from an ambiguous
// answer. Sources are visited in sorted ID order so the output lists are
// deterministic for identical input.
func (e *Engine) extractJudgments(responses map[string]model.SourceResponse) judgmentSet {
	set := judgmentSet{
		judgments:     make(map[string]model.Outcome, len(responses)),
		policyLimited: []string{},
		uncertain:     []string{},
	}

	ids := make([]string, 0, len(responses))
	for id := range responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		resp := responses[id]
		if !resp.Succeeded || resp.Text == "" {
			continue
		}

		outcome := e.classifier.Classify(normalize.Markdown(resp.Text))
		set.judgments[id] = outcome

		switch outcome {
		case model.OutcomePolicyLimited:
			set.policyLimited = append(set.policyLimited, id)
		case model.OutcomeUncertain:
			set.uncertain = append(set.uncertain, id)
		}
	}

	return set
}
