package query

import (
	"fmt"
	"os"
	"strings"
)

// API key environment variables, one per provider. CLAUDE_API_KEY is the
// historical name and is kept for existing deployments.
var apiKeyEnv = map[string][]string{
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"CLAUDE_API_KEY", "ANTHROPIC_API_KEY"},
	"mistral":   {"MISTRAL_API_KEY"},
	"deepseek":  {"DEEPSEEK_API_KEY"},
}

// ProviderNames lists the supported providers in panel order
var ProviderNames = []string{"openai", "anthropic", "mistral", "deepseek"}

// NewProvider creates a provider client by name
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Name) {
	case "openai", "mistral", "deepseek":
		config.Name = strings.ToLower(config.Name)
		return NewOpenAICompatProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: %s)",
			config.Name, strings.Join(ProviderNames, ", "))
	}
}

// APIKeyFromEnv resolves the API key for a provider from its environment
// variables. Returns empty when none is set.
func APIKeyFromEnv(name string) string {
	for _, env := range apiKeyEnv[strings.ToLower(name)] {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}
	return ""
}
