// Package checker orchestrates a complete claim check: preprocess the
// claim, fan it out to the provider panel, and run the consensus engine
// over the collected responses.
package checker

import (
	"context"
	"fmt"
	"os"

	"veridex/internal/consensus"
	"veridex/internal/model"
	"veridex/internal/preprocess"
	"veridex/internal/query"
	"veridex/internal/registry"
)

// Checker wires the panel and the consensus engine together
type Checker struct {
	panel   *query.Panel
	engine  *consensus.Engine
	verbose bool
}

// Result is the full outcome of one claim check. The consensus fields are
// embedded so the serialized form carries the engine's schema directly.
type Result struct {
	Claim           string `json:"claim"`
	StructuredClaim string `json:"structured_claim"`
	model.ConsensusResult
	Responses map[string]model.SourceResponse `json:"responses,omitempty"`
}

// New builds a checker from configuration. Providers are instantiated for
// every enabled entry whose API key is present in the environment; model
// IDs come from the registry unless pinned in the config.
func New(cfg model.Config, reg *registry.Registry) (*Checker, error) {
	providers, err := buildProviders(cfg, reg)
	if err != nil {
		return nil, err
	}

	return &Checker{
		panel:   query.NewPanel(providers, cfg.Query),
		engine:  consensus.NewEngine(),
		verbose: cfg.Output.Verbose,
	}, nil
}

// NewWithPanel builds a checker over an existing panel (used in tests and
// by callers that assemble providers themselves)
func NewWithPanel(panel *query.Panel) *Checker {
	return &Checker{
		panel:  panel,
		engine: consensus.NewEngine(),
	}
}

// Check runs one claim through the full pipeline
func (c *Checker) Check(ctx context.Context, rawClaim string) (*Result, error) {
	claim := preprocess.Claim(rawClaim)
	if claim == "" {
		return nil, fmt.Errorf("empty claim")
	}
	prompt := preprocess.Prompt(claim)

	if c.verbose {
		fmt.Fprintf(os.Stderr, "Querying %d providers...\n", len(c.panel.Providers()))
	}

	responses := c.panel.Collect(ctx, prompt)

	if c.verbose {
		for _, resp := range responses {
			if resp.Succeeded {
				fmt.Fprintf(os.Stderr, "✓ %s answered\n", resp.SourceID)
			} else {
				fmt.Fprintf(os.Stderr, "✗ %s failed: %s\n", resp.SourceID, resp.ErrorMessage)
			}
		}
	}

	result := c.engine.Analyze(responses)

	return &Result{
		Claim:           rawClaim,
		StructuredClaim: claim,
		ConsensusResult: result,
		Responses:       responses,
	}, nil
}

// buildProviders instantiates every configured provider that has an API key
func buildProviders(cfg model.Config, reg *registry.Registry) ([]query.Provider, error) {
	entries := map[string]model.ProviderConfig{
		"openai":    cfg.Providers.OpenAI,
		"anthropic": cfg.Providers.Anthropic,
		"mistral":   cfg.Providers.Mistral,
		"deepseek":  cfg.Providers.DeepSeek,
	}

	var providers []query.Provider
	for _, name := range query.ProviderNames {
		entry := entries[name]
		if !entry.Enabled {
			continue
		}

		apiKey := entry.APIKey
		if apiKey == "" {
			apiKey = query.APIKeyFromEnv(name)
		}
		if apiKey == "" {
			continue
		}

		modelID := entry.Model
		if modelID == "" && reg != nil {
			modelID = reg.ModelFor(name)
		}

		prov, err := query.NewProvider(query.Config{
			Name:        name,
			Model:       modelID,
			APIKey:      apiKey,
			BaseURL:     entry.BaseURL,
			Timeout:     int(cfg.Query.Timeout.Std().Seconds()),
			MaxTokens:   cfg.Query.MaxTokens,
			Temperature: cfg.Query.Temperature,
			HTTPProxy:   cfg.Query.HTTPProxy,
			HTTPSProxy:  cfg.Query.HTTPSProxy,
			NoProxy:     cfg.Query.NoProxy,
		})
		if err != nil {
			return nil, fmt.Errorf("configure %s: %w", name, err)
		}
		providers = append(providers, prov)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers configured: set at least one of OPENAI_API_KEY, CLAUDE_API_KEY, MISTRAL_API_KEY, DEEPSEEK_API_KEY")
	}
	return providers, nil
}
