package checker

import (
	"context"
	"strings"
	"testing"

	"veridex/internal/model"
	"veridex/internal/query"
)

type cannedProvider struct {
	name string
	text string
	seen string
}

func (p *cannedProvider) Name() string { return p.name }

func (p *cannedProvider) Ask(ctx context.Context, req query.AskRequest) (*query.AskResponse, error) {
	p.seen = req.Prompt
	return &query.AskResponse{Text: p.text}, nil
}

func (p *cannedProvider) ListModels(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (p *cannedProvider) IsAvailable(ctx context.Context) bool { return true }

func testPanel(providers ...query.Provider) *query.Panel {
	return query.NewPanel(providers, model.QueryConfig{
		MaxRetries:        1,
		RequestsPerSecond: 1000,
		Burst:             100,
	})
}

func TestChecker_Check_EndToEnd(t *testing.T) {
	openai := &cannedProvider{name: "openai", text: "TRUE"}
	anthropic := &cannedProvider{name: "anthropic", text: "**TRUE**, well documented."}
	mistral := &cannedProvider{name: "mistral", text: "TRUE"}

	c := NewWithPanel(testPanel(openai, anthropic, mistral))

	result, err := c.Check(context.Background(), "Is it true that water boils at 100C at sea level?")
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	if result.Verdict != model.OutcomeTrue {
		t.Errorf("expected TRUE verdict, got %s", result.Verdict)
	}
	if result.ConfidencePercentage != 100 {
		t.Errorf("expected confidence 100, got %d", result.ConfidencePercentage)
	}
	if result.Claim != "Is it true that water boils at 100C at sea level?" {
		t.Errorf("raw claim must be echoed, got %q", result.Claim)
	}
	if strings.Contains(result.StructuredClaim, "is it true") {
		t.Errorf("framing not stripped from structured claim: %q", result.StructuredClaim)
	}

	// Every provider must receive the same adjudication prompt
	if openai.seen != anthropic.seen || anthropic.seen != mistral.seen {
		t.Error("providers received different prompts")
	}
	if !strings.Contains(openai.seen, "TRUE or FALSE") {
		t.Errorf("prompt missing adjudication framing: %q", openai.seen)
	}
}

func TestChecker_Check_EmptyClaim(t *testing.T) {
	c := NewWithPanel(testPanel(&cannedProvider{name: "openai", text: "TRUE"}))

	if _, err := c.Check(context.Background(), "   "); err == nil {
		t.Error("expected error for empty claim")
	}
}

func TestChecker_Check_IncludesRawResponses(t *testing.T) {
	c := NewWithPanel(testPanel(&cannedProvider{name: "openai", text: "FALSE"}))

	result, err := c.Check(context.Background(), "the moon is made of cheese")
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	resp, ok := result.Responses["openai"]
	if !ok || resp.Text != "FALSE" {
		t.Errorf("raw responses must be included, got %+v", result.Responses)
	}
	if result.Judgments["openai"] != model.OutcomeFalse {
		t.Errorf("expected FALSE judgment, got %s", result.Judgments["openai"])
	}
}

func TestBuildProviders_NoneConfigured(t *testing.T) {
	// No API keys in the environment for disabled config
	cfg := model.DefaultConfig()
	cfg.Providers.OpenAI.Enabled = false
	cfg.Providers.Anthropic.Enabled = false
	cfg.Providers.Mistral.Enabled = false
	cfg.Providers.DeepSeek.Enabled = false

	if _, err := buildProviders(cfg, nil); err == nil {
		t.Error("expected error when no provider is configured")
	}
}

func TestBuildProviders_UsesConfiguredKey(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Providers.OpenAI.APIKey = "sk-test"
	cfg.Providers.OpenAI.Model = "gpt-4o"
	cfg.Providers.Anthropic.Enabled = false
	cfg.Providers.Mistral.Enabled = false
	cfg.Providers.DeepSeek.Enabled = false

	providers, err := buildProviders(cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "openai" {
		t.Errorf("expected single openai provider, got %v", providers)
	}
}
