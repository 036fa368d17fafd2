package classify

import "regexp"

// PatternSet holds the fixed phrase patterns the classifier matches
// against. The lists are data, not logic: they are injected into the
// classifier so they can be tuned and tested independently.
type PatternSet struct {
	// Recusal patterns signal a decline on logical grounds: paradox,
	// self-reference, category error. Word-boundary anchored.
	Recusal []*regexp.Regexp

	// Policy patterns signal a safety or content-policy refusal
	Policy []*regexp.Regexp

	// Uncertainty is a vocabulary of hedging terms matched as plain
	// case-insensitive substrings
	Uncertainty []string

	// NegatedFalse / NegatedTrue guard the polarity tokens: a response
	// saying "NOT FALSE" is not asserting falsehood
	NegatedFalse []*regexp.Regexp
	NegatedTrue  []*regexp.Regexp
}

var (
	falseToken = regexp.MustCompile(`\bFALSE\b`)
	trueToken  = regexp.MustCompile(`\bTRUE\b`)
)

// DefaultPatterns returns the production pattern set.
// All phrase patterns are matched against lower-cased text.
func DefaultPatterns() *PatternSet {
	return &PatternSet{
		Recusal: compileAll(
			`\bself-referen(ce|tial)\b`,
			`\bliar('s)? paradox\b`,
			`\bparadox(ical)?\b`,
			`\bcategory error\b`,
			`\bunanswerable by design\b`,
			`\bcannot be assigned a truth value\b`,
			`\bnot a well-formed claim\b`,
			`\b(i )?(must )?recuse\b`,
			`\blogically undecidable\b`,
		),
		Policy: compileAll(
			`\bpolicy_limited\b`,
			`\bi (don'?t|do not) feel comfortable\b`,
			`\bi('?m| am) not comfortable\b`,
			`\brecommend consulting\b`,
			`\bconsult (a|your) (qualified |licensed )?(professional|doctor|lawyer|expert)\b`,
			`\bi (can'?t|cannot|won'?t) (help|assist) with\b`,
			`\bagainst my (guidelines|policies)\b`,
			`\bunable to provide (an opinion|a judgment)\b`,
		),
		Uncertainty: []string{
			"insufficient evidence",
			"remains disputed",
			"ambiguous",
			"controversial",
			"depends on",
			"cannot be determined",
			"hard to say",
			"difficult to verify",
			"unclear",
			"mixed evidence",
			"contested",
			"no definitive",
			"not enough information",
		},
		NegatedFalse: compileAll(
			`\bNOT\s+FALSE\b`,
			`\bISN'?T\s+FALSE\b`,
		),
		NegatedTrue: compileAll(
			`\bNOT\s+TRUE\b`,
			`\bISN'?T\s+TRUE\b`,
		),
	}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
