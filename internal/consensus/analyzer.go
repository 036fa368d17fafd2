// Package consensus reduces a set of independent model responses on a
// yes/no factual claim to a single verdict with a calibrated confidence
// score. It is purely computational: no I/O, no shared state, safe for
// concurrent use.
package consensus

import (
	"veridex/internal/classify"
	"veridex/internal/model"
)

// Engine is the response classification and confidence scoring engine
type Engine struct {
	classifier *classify.Classifier
}

// NewEngine creates an engine using the default production patterns
func NewEngine() *Engine {
	return NewEngineWithPatterns(nil)
}

// NewEngineWithPatterns creates an engine with a custom pattern set
// (nil selects the defaults)
func NewEngineWithPatterns(patterns *classify.PatternSet) *Engine {
	return &Engine{classifier: classify.NewClassifier(patterns)}
}

// Analyze classifies every source response and aggregates the outcomes
// into a consensus verdict. It never fails: malformed or empty text
// degrades to UNCERTAIN for that source, and sources whose upstream query
// failed are omitted from the judgment map entirely.
func (e *Engine) Analyze(responses map[string]model.SourceResponse) model.ConsensusResult {
	set := e.extractJudgments(responses)
	t := newTally(set.judgments)

	verdict := resolveVerdict(t)
	confidence := scoreConfidence(verdict, t, set.policyLimited, set.judgments)

	return model.ConsensusResult{
		Verdict:              verdict,
		ConfidencePercentage: confidence,
		ConfidenceLevel:      model.LabelForConfidence(confidence),
		Judgments:            set.judgments,
		PolicyLimitedSources: set.policyLimited,
		UncertainSources:     set.uncertain,
	}
}
