// Package classify turns one model's free-text answer into a categorical
// outcome. Matching is surface-level on purpose: the engine never attempts
// language understanding beyond fixed phrase and token patterns.
package classify

import (
	"strings"

	"veridex/internal/model"
)

// Classifier classifies a single normalized response into an outcome
type Classifier struct {
	patterns *PatternSet
}

// NewClassifier creates a classifier with the given pattern set.
// A nil set selects the default production patterns.
func NewClassifier(patterns *PatternSet) *Classifier {
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	return &Classifier{patterns: patterns}
}

// Classify maps normalized response text to one of the five outcomes.
// Priority is fixed: recusal and policy refusals short-circuit everything
// else, then FALSE polarity is checked before TRUE, and uncertainty
// language downgrades either polarity to UNCERTAIN.
func (c *Classifier) Classify(text string) model.Outcome {
	lower := strings.ToLower(text)

	if c.matchesRecusal(lower) {
		return model.OutcomeRecuse
	}
	if c.matchesPolicy(lower) {
		return model.OutcomePolicyLimited
	}

	hedged := c.matchesUncertainty(lower)
	upper := strings.ToUpper(text)

	if c.assertsFalse(upper) {
		if hedged {
			return model.OutcomeUncertain
		}
		return model.OutcomeFalse
	}
	if c.assertsTrue(upper) {
		if hedged {
			return model.OutcomeUncertain
		}
		return model.OutcomeTrue
	}

	// No explicit polarity token: the response is treated as uncertain
	return model.OutcomeUncertain
}

func (c *Classifier) matchesRecusal(lower string) bool {
	for _, re := range c.patterns.Recusal {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func (c *Classifier) matchesPolicy(lower string) bool {
	for _, re := range c.patterns.Policy {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func (c *Classifier) matchesUncertainty(lower string) bool {
	for _, term := range c.patterns.Uncertainty {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// assertsFalse reports whether upper-cased text contains a standalone
// FALSE token that is not negated. Independent of assertsTrue: a response
// may assert both, neither, or either.
func (c *Classifier) assertsFalse(upper string) bool {
	if !falseToken.MatchString(upper) {
		return false
	}
	for _, re := range c.patterns.NegatedFalse {
		if re.MatchString(upper) {
			return false
		}
	}
	return true
}

// assertsTrue reports whether upper-cased text contains a standalone TRUE
// token that is not negated
func (c *Classifier) assertsTrue(upper string) bool {
	if !trueToken.MatchString(upper) {
		return false
	}
	for _, re := range c.patterns.NegatedTrue {
		if re.MatchString(upper) {
			return false
		}
	}
	return true
}
