package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAICompatProvider implements Provider over the OpenAI chat-completions
// schema. Mistral and DeepSeek expose the same wire format, so one client
// serves all three with different base URLs.
type OpenAICompatProvider struct {
	name   string
	client *openai.Client
	config Config

	// balanceURL is set only for providers with a balance endpoint
	// (DeepSeek); see credit.go
	balanceURL string
}

// Default endpoints for the OpenAI-compatible providers
const (
	mistralBaseURL  = "https://api.mistral.ai/v1"
	deepseekBaseURL = "https://api.deepseek.com/v1"
)

// NewOpenAICompatProvider creates a provider speaking the OpenAI chat API
func NewOpenAICompatProvider(config Config) (*OpenAICompatProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%s API key is required", config.Name)
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	baseURL := config.BaseURL
	if baseURL == "" {
		switch config.Name {
		case "mistral":
			baseURL = mistralBaseURL
		case "deepseek":
			baseURL = deepseekBaseURL
		}
	}
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	// DeepSeek serves its balance endpoint at the account root, above /v1
	balanceURL := ""
	if config.Name == "deepseek" {
		balanceURL = strings.TrimSuffix(strings.TrimSuffix(baseURL, "/"), "/v1") + "/user/balance"
	}

	return &OpenAICompatProvider{
		name:       config.Name,
		client:     openai.NewClientWithConfig(clientConfig),
		config:     config,
		balanceURL: balanceURL,
	}, nil
}

// Name returns the provider name
func (p *OpenAICompatProvider) Name() string {
	return p.name
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAICompatProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// ListModels returns the model IDs available to this API key
func (p *OpenAICompatProvider) ListModels(ctx context.Context) ([]string, error) {
	resp, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s list models: %w", p.name, err)
	}

	ids := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Ask sends the adjudication prompt via the chat-completions API
func (p *OpenAICompatProvider) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		return nil, fmt.Errorf("%s: no model configured", p.name)
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s API error: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", p.name)
	}

	return &AskResponse{
		Text:       strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
