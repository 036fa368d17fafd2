// Package normalize strips markdown decoration from model responses so the
// classifiers can match against plain prose. Models frequently wrap their
// verdict in emphasis ("**FALSE**") or fence supporting material in code
// blocks; both would otherwise defeat token matching.
package normalize

import "regexp"

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```.*?```")
	inlineCodePattern  = regexp.MustCompile("`([^`\n]*)`")
	boldStarPattern    = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__([^_]+)__`)
	italicStarPattern  = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderPattern = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	headerPattern      = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
)

// Markdown removes markdown decoration from text, preserving the prose.
// Fenced code blocks are dropped entirely (content included); inline code,
// emphasis, and header markers are stripped with their content kept.
// Empty input is returned unchanged, and the function is idempotent:
// normalizing already-normalized text is a no-op.
func Markdown(text string) string {
	if text == "" {
		return text
	}

	// Fences first so their interior backticks are not mistaken for
	// inline code spans
	text = fencedBlockPattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = boldStarPattern.ReplaceAllString(text, "$1")
	text = boldUnderPattern.ReplaceAllString(text, "$1")
	text = italicStarPattern.ReplaceAllString(text, "$1")
	text = italicUnderPattern.ReplaceAllString(text, "$1")
	text = headerPattern.ReplaceAllString(text, "")

	return text
}
