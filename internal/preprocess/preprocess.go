// Package preprocess canonicalizes a user-submitted claim before it is
// sent to the provider panel. Conversational framing is stripped, loaded
// wording is mapped to neutral synonyms, and the result is wrapped in the
// fixed TRUE-or-FALSE adjudication prompt every provider receives.
package preprocess

import (
	"regexp"
	"strings"
)

const promptPrefix = "This is a fact adjudication request for a TRUE or FALSE response: "

// removalPhrases are conversational wrappers that carry no factual content
var removalPhrases = compileAll(
	`(?i)^\s*is it true that\b`,
	`(?i)^\s*is it false that\b`,
	`(?i)^\s*fact[- ]?check:?\s*`,
	`(?i)^\s*tell me (whether|if)\b`,
	`(?i)^\s*i heard that\b`,
	`(?i)^\s*someone (said|told me) that\b`,
	`(?i)\?+\s*$`,
)

// synonymMap canonicalizes loaded or informal wording so all providers see
// the same neutral phrasing
var synonymMap = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bbogus\b`), "false"},
	{regexp.MustCompile(`(?i)\bbullshit\b`), "false"},
	{regexp.MustCompile(`(?i)\blegit\b`), "accurate"},
	{regexp.MustCompile(`(?i)\bfor real\b`), "accurate"},
	{regexp.MustCompile(`(?i)\bfake news\b`), "inaccurate"},
	{regexp.MustCompile(`(?i)\bhoax\b`), "fabrication"},
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// Claim normalizes a raw claim: strips framing phrases, applies the
// synonym map, lower-cases, and collapses whitespace. Empty input stays
// empty.
func Claim(raw string) string {
	claim := strings.TrimSpace(raw)
	if claim == "" {
		return ""
	}

	for _, re := range removalPhrases {
		claim = re.ReplaceAllString(claim, "")
	}
	for _, s := range synonymMap {
		claim = s.pattern.ReplaceAllString(claim, s.replacement)
	}

	claim = strings.ToLower(claim)
	claim = whitespacePattern.ReplaceAllString(claim, " ")
	return strings.TrimSpace(claim)
}

// Prompt wraps a normalized claim in the adjudication framing sent to
// every provider
func Prompt(claim string) string {
	return promptPrefix + claim
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
