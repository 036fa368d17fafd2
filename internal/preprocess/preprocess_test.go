package preprocess

import (
	"strings"
	"testing"
)

func TestClaim_StripsFraming(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Is it true that the moon landing happened?", "the moon landing happened"},
		{"Fact check: vaccines cause autism", "vaccines cause autism"},
		{"I heard that goldfish have a 3 second memory", "goldfish have a 3 second memory"},
		{"  The Great Wall   is visible from space  ", "the great wall is visible from space"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Claim(tt.in); got != tt.want {
			t.Errorf("Claim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClaim_AppliesSynonyms(t *testing.T) {
	got := Claim("Is the flat earth theory bogus?")
	if !strings.Contains(got, "false") {
		t.Errorf("expected synonym substitution, got %q", got)
	}
	if strings.Contains(got, "bogus") {
		t.Errorf("loaded term not replaced: %q", got)
	}
}

func TestPrompt_Framing(t *testing.T) {
	prompt := Prompt("the earth is flat")
	if !strings.HasPrefix(prompt, "This is a fact adjudication request") {
		t.Errorf("unexpected prompt framing: %q", prompt)
	}
	if !strings.Contains(prompt, "TRUE or FALSE") {
		t.Errorf("prompt must request a TRUE or FALSE response: %q", prompt)
	}
	if !strings.HasSuffix(prompt, "the earth is flat") {
		t.Errorf("claim must terminate the prompt: %q", prompt)
	}
}
