package normalize

import (
	"strings"
	"testing"
)

func TestMarkdown_StripsEmphasisAndCode(t *testing.T) {
	input := "The claim is **FALSE**. See `RFC 1149` for details.\n```\nFALSE FALSE FALSE\n```\nProse continues."
	got := Markdown(input)

	if strings.Contains(got, "**") {
		t.Errorf("bold markers not removed: %q", got)
	}
	if strings.Contains(got, "`") {
		t.Errorf("code markers not removed: %q", got)
	}
	if !strings.Contains(got, "The claim is FALSE.") {
		t.Errorf("emphasized content lost: %q", got)
	}
	if !strings.Contains(got, "RFC 1149") {
		t.Errorf("inline code content lost: %q", got)
	}
	if !strings.Contains(got, "Prose continues.") {
		t.Errorf("prose after fence lost: %q", got)
	}
	if strings.Contains(got, "FALSE FALSE FALSE") {
		t.Errorf("fenced block content should be dropped: %q", got)
	}
}

func TestMarkdown_StripsHeaders(t *testing.T) {
	input := "## Verdict\nTRUE\n### Reasoning\n*Well established.*"
	got := Markdown(input)

	if strings.Contains(got, "#") {
		t.Errorf("header markers not removed: %q", got)
	}
	if !strings.Contains(got, "Verdict") || !strings.Contains(got, "Reasoning") {
		t.Errorf("header content lost: %q", got)
	}
	if !strings.Contains(got, "Well established.") {
		t.Errorf("italic content lost: %q", got)
	}
}

func TestMarkdown_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text, no markdown",
		"**bold** and _italic_ and `code`",
		"```go\nfunc main() {}\n```\nafter",
		"***both*** __strong__ # not a header",
		"unclosed ```fence and stray ** markers",
	}

	for _, input := range inputs {
		once := Markdown(input)
		twice := Markdown(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMarkdown_EmptyUnchanged(t *testing.T) {
	if got := Markdown(""); got != "" {
		t.Errorf("expected empty string unchanged, got %q", got)
	}
}
