// Package query sends one adjudication prompt to a panel of AI providers
// and collects their raw answers. It knows nothing about classification:
// the consensus engine consumes its output.
package query

import "context"

// Provider defines the interface for a single AI provider
type Provider interface {
	// Name returns the source identifier used in judgment maps
	Name() string

	// Ask sends the adjudication prompt and returns the raw response text
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)

	// ListModels returns the model IDs the provider currently offers,
	// used by the registry for discovery
	ListModels(ctx context.Context) ([]string, error)

	// IsAvailable checks if the provider is configured and reachable
	IsAvailable(ctx context.Context) bool
}

// AskRequest carries one prompt to a provider
type AskRequest struct {
	// Prompt is the preprocessed adjudication prompt
	Prompt string

	// Model overrides the configured model for this request
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; the panel runs cool for consistency
	Temperature float32
}

// AskResponse is one provider's raw answer
type AskResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds the settings shared by every provider client
type Config struct {
	// Name is the provider identifier: openai, anthropic, mistral, deepseek
	Name string

	// Model is the model ID to query (usually from the registry)
	Model string

	// APIKey authenticates requests
	APIKey string

	// BaseURL overrides the provider endpoint
	BaseURL string

	// Timeout bounds a single request
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Temperature for sampling
	Temperature float32

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}
