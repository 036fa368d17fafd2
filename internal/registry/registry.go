// Package registry tracks which model ID to query per provider. IDs are
// discovered from the providers' model-listing endpoints and cached; when
// discovery is unavailable a last-known-good table keeps the service
// answering.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"veridex/internal/cache"
	"veridex/internal/query"
)

const configKey = "model_config"

// Source values recorded on a ModelConfig
const (
	SourceDiscovered = "discovered"
	SourceFallback   = "last_known_good_fallback"
)

// ModelInfo is one provider's selected model
type ModelInfo struct {
	ID      string `json:"id"`
	DocsURL string `json:"docs_url,omitempty"`
}

// ModelConfig is the registry's serialized state
type ModelConfig struct {
	LastUpdated time.Time            `json:"last_updated"`
	Source      string               `json:"source"`
	Models      map[string]ModelInfo `json:"models"`
}

// fallbackModels is the last-known-good table, updated on release
var fallbackModels = map[string]ModelInfo{
	"openai": {
		ID:      "gpt-4o",
		DocsURL: "https://platform.openai.com/docs/models",
	},
	"anthropic": {
		ID:      "claude-3-opus-20240229",
		DocsURL: "https://docs.anthropic.com/about-claude/models/overview",
	},
	"mistral": {
		ID:      "mistral-large-latest",
		DocsURL: "https://docs.mistral.ai/getting-started/models/",
	},
	"deepseek": {
		ID:      "deepseek-chat",
		DocsURL: "https://api-docs.deepseek.com/models",
	},
}

// preferredModels ranks discovery candidates per provider, best first.
// A discovered ID wins if it contains one of these substrings.
var preferredModels = map[string][]string{
	"openai":    {"gpt-4o", "gpt-4"},
	"anthropic": {"claude-3-opus", "claude-3-5-sonnet", "claude-3"},
	"mistral":   {"mistral-large", "mistral-medium"},
	"deepseek":  {"deepseek-chat"},
}

// Registry resolves and caches the model ID per provider
type Registry struct {
	store cache.Cache
	ttl   time.Duration
}

// New creates a registry backed by the given cache. A nil cache disables
// persistence; Load then always returns the fallback table.
func New(store cache.Cache, ttl time.Duration) *Registry {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Registry{store: store, ttl: ttl}
}

// Fallback returns the last-known-good model configuration
func Fallback() ModelConfig {
	models := make(map[string]ModelInfo, len(fallbackModels))
	for name, info := range fallbackModels {
		models[name] = info
	}
	return ModelConfig{
		LastUpdated: time.Time{},
		Source:      SourceFallback,
		Models:      models,
	}
}

// Load returns the current model configuration: the cached discovery
// result when present, the fallback table otherwise. Never fails.
func (r *Registry) Load() ModelConfig {
	if r.store == nil {
		return Fallback()
	}

	data, found := r.store.Get(cache.Key(configKey))
	if !found {
		return Fallback()
	}

	var cfg ModelConfig
	if err := json.Unmarshal(data, &cfg); err != nil || len(cfg.Models) == 0 {
		return Fallback()
	}
	return cfg
}

// ModelFor returns the model ID to query for a provider
func (r *Registry) ModelFor(provider string) string {
	cfg := r.Load()
	if info, ok := cfg.Models[strings.ToLower(provider)]; ok {
		return info.ID
	}
	return ""
}

// Discover queries every provider's model listing and stores the
// preferred ID per provider. Providers that fail discovery keep their
// fallback entry; the aggregate error reports what went wrong without
// invalidating the result.
func (r *Registry) Discover(ctx context.Context, providers []query.Provider) (ModelConfig, error) {
	cfg := Fallback()
	cfg.LastUpdated = time.Now().UTC()

	var errs []string
	discovered := 0

	for _, prov := range providers {
		name := strings.ToLower(prov.Name())

		ids, err := prov.ListModels(ctx)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			continue
		}

		id := pickPreferred(name, ids)
		if id == "" {
			errs = append(errs, fmt.Sprintf("%s: no usable model in listing", name))
			continue
		}

		info := cfg.Models[name]
		info.ID = id
		cfg.Models[name] = info
		discovered++
	}

	if discovered > 0 {
		cfg.Source = SourceDiscovered
	}

	if r.store != nil {
		if data, err := json.Marshal(cfg); err == nil {
			_ = r.store.Set(cache.Key(configKey), data, r.ttl)
		}
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("discovery incomplete: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// pickPreferred selects the best model ID from a provider's listing.
// Preference substrings are tried in rank order; with no ranking match
// the fallback ID is used when listed, otherwise nothing.
func pickPreferred(provider string, ids []string) string {
	for _, want := range preferredModels[provider] {
		for _, id := range ids {
			if strings.Contains(id, want) {
				return id
			}
		}
	}

	if fb, ok := fallbackModels[provider]; ok {
		for _, id := range ids {
			if id == fb.ID {
				return id
			}
		}
	}
	return ""
}
