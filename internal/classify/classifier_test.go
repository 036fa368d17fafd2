package classify

import (
	"testing"

	"veridex/internal/model"
)

func TestClassifier_Classify_Polarity(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name string
		text string
		want model.Outcome
	}{
		{"plain true", "The claim is TRUE.", model.OutcomeTrue},
		{"plain false", "FALSE. The earth is not flat in that sense.", model.OutcomeFalse},
		{"lowercase token still counts", "the answer is true", model.OutcomeTrue},
		{"negated false falls through to true", "This is NOT FALSE, it is TRUE.", model.OutcomeTrue},
		{"negated true falls through to false", "The statement isn't TRUE. It is FALSE.", model.OutcomeFalse},
		{"both tokens present prefers false", "Some say TRUE but the claim is FALSE.", model.OutcomeFalse},
		{"no polarity token", "The earth orbits the sun once a year.", model.OutcomeUncertain},
		{"empty text", "", model.OutcomeUncertain},
		{"token inside word does not match", "FALSEHOOD is a strong word.", model.OutcomeUncertain},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("%s: Classify(%q) = %s, want %s", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestClassifier_Classify_UncertaintyOverridesPolarity(t *testing.T) {
	c := NewClassifier(nil)

	text := "This claim is FALSE, though it remains a controversial topic"
	if got := c.Classify(text); got != model.OutcomeUncertain {
		t.Errorf("expected UNCERTAIN for hedged polarity, got %s", got)
	}

	text = "TRUE, but the evidence is ambiguous at best"
	if got := c.Classify(text); got != model.OutcomeUncertain {
		t.Errorf("expected UNCERTAIN for hedged TRUE, got %s", got)
	}
}

func TestClassifier_Classify_PolicyDecline(t *testing.T) {
	c := NewClassifier(nil)

	tests := []string{
		"I don't feel comfortable speculating on this",
		"I would recommend consulting official sources. TRUE or FALSE is not for me to say.",
		"policy_limited",
		"I can't help with adjudicating this claim.",
	}

	for _, text := range tests {
		if got := c.Classify(text); got != model.OutcomePolicyLimited {
			t.Errorf("Classify(%q) = %s, want POLICY_LIMITED", text, got)
		}
	}
}

func TestClassifier_Classify_Recusal(t *testing.T) {
	c := NewClassifier(nil)

	tests := []string{
		"This is a self-referential statement and cannot be assigned a truth value.",
		"The liar paradox makes this unanswerable by design. FALSE would be wrong, TRUE would be wrong.",
		"I must recuse: this is a category error, not a factual claim.",
	}

	for _, text := range tests {
		if got := c.Classify(text); got != model.OutcomeRecuse {
			t.Errorf("Classify(%q) = %s, want RECUSE", text, got)
		}
	}
}

func TestClassifier_Classify_PriorityOrder(t *testing.T) {
	c := NewClassifier(nil)

	// Recusal wins over policy language and polarity
	text := "This paradox means I don't feel comfortable answering. FALSE."
	if got := c.Classify(text); got != model.OutcomeRecuse {
		t.Errorf("recusal should short-circuit, got %s", got)
	}

	// Policy wins over polarity and uncertainty
	text = "I don't feel comfortable speculating; the topic is controversial. TRUE."
	if got := c.Classify(text); got != model.OutcomePolicyLimited {
		t.Errorf("policy should short-circuit, got %s", got)
	}
}

func TestClassifier_CustomPatterns(t *testing.T) {
	patterns := &PatternSet{
		Uncertainty: []string{"quien sabe"},
	}
	c := NewClassifier(patterns)

	if got := c.Classify("TRUE, pero quien sabe"); got != model.OutcomeUncertain {
		t.Errorf("custom uncertainty vocabulary not applied, got %s", got)
	}
	// Default vocabulary is not in effect for a custom set
	if got := c.Classify("TRUE, though controversial"); got != model.OutcomeTrue {
		t.Errorf("default vocabulary should not leak into custom set, got %s", got)
	}
}
