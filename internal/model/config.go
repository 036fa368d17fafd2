package model

import "time"

// Config is the full runtime configuration
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Query     QueryConfig     `yaml:"query"`
	Cache     CacheConfig     `yaml:"cache"`
	Server    ServerConfig    `yaml:"server"`
	Output    OutputConfig    `yaml:"output"`
}

// ProviderConfig configures a single AI provider
type ProviderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model,omitempty"`    // Empty means use the registry's discovered model
	BaseURL string `yaml:"base_url,omitempty"` // Override API endpoint
	APIKey  string `yaml:"-"`                  // Always from environment, never serialized
}

// ProvidersConfig holds the configuration for every supported provider
type ProvidersConfig struct {
	OpenAI    ProviderConfig `yaml:"openai"`
	Anthropic ProviderConfig `yaml:"anthropic"`
	Mistral   ProviderConfig `yaml:"mistral"`
	DeepSeek  ProviderConfig `yaml:"deepseek"`
}

// QueryConfig controls how the panel queries providers
type QueryConfig struct {
	Timeout           Duration `yaml:"timeout"`
	MaxTokens         int      `yaml:"max_tokens"`
	Temperature       float32  `yaml:"temperature"`
	MaxRetries        int      `yaml:"max_retries"`
	RequestsPerSecond float64  `yaml:"requests_per_second"`
	Burst             int      `yaml:"burst"`
	HTTPProxy         string   `yaml:"http_proxy,omitempty"`
	HTTPSProxy        string   `yaml:"https_proxy,omitempty"`
	NoProxy           string   `yaml:"no_proxy,omitempty"`
}

// CacheConfig controls the model-registry cache
type CacheConfig struct {
	Enabled bool     `yaml:"enabled"`
	Dir     string   `yaml:"dir"`
	TTL     Duration `yaml:"ttl"`
}

// ServerConfig controls the HTTP server
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Providers: ProvidersConfig{
			OpenAI:    ProviderConfig{Enabled: true},
			Anthropic: ProviderConfig{Enabled: true},
			Mistral:   ProviderConfig{Enabled: true},
			DeepSeek:  ProviderConfig{Enabled: true},
		},
		Query: QueryConfig{
			Timeout:           Duration(60 * time.Second),
			MaxTokens:         1000,
			Temperature:       0.1,
			MaxRetries:        3,
			RequestsPerSecond: 2,
			Burst:             4,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     "", // Defaults to ~/.veridex/cache at runtime
			TTL:     Duration(24 * time.Hour),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
