package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"veridex/internal/model"
	"veridex/internal/worker"
)

const panelMaxRetries = 3

// panelSleepFunc is the sleep function used between retries (injectable for tests)
var panelSleepFunc = time.Sleep

// Panel fans one adjudication prompt out to every configured provider and
// gathers the raw responses. Failures never abort the panel: a provider
// that errors out contributes a failed SourceResponse, which the
// consensus engine then skips.
type Panel struct {
	providers  []Provider
	limiter    *worker.Limiter
	maxWorkers int
	maxRetries int
}

// NewPanel creates a panel over the given providers
func NewPanel(providers []Provider, cfg model.QueryConfig) *Panel {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = panelMaxRetries
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Panel{
		providers:  providers,
		limiter:    worker.NewLimiter(rps, cfg.Burst),
		maxWorkers: len(providers),
		maxRetries: maxRetries,
	}
}

// Providers returns the panel's provider list
func (p *Panel) Providers() []Provider {
	return p.providers
}

// Collect queries every provider concurrently and returns one
// SourceResponse per provider, keyed by provider name.
func (p *Panel) Collect(ctx context.Context, prompt string) map[string]model.SourceResponse {
	responses := make(map[string]model.SourceResponse, len(p.providers))
	if len(p.providers) == 0 {
		return responses
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, p.maxWorkers)

	for _, provider := range p.providers {
		wg.Add(1)
		go func(prov Provider) {
			defer wg.Done()

			name := prov.Name()

			select {
			case <-ctx.Done():
				mu.Lock()
				responses[name] = model.SourceResponse{
					SourceID:     name,
					Succeeded:    false,
					ErrorMessage: "context cancelled",
				}
				mu.Unlock()
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			resp := p.askWithRetry(ctx, prov, prompt)

			mu.Lock()
			responses[name] = resp
			mu.Unlock()
		}(provider)
	}

	wg.Wait()
	return responses
}

// askWithRetry retries transient failures with exponential backoff
func (p *Panel) askWithRetry(ctx context.Context, prov Provider, prompt string) model.SourceResponse {
	name := prov.Name()

	var lastErr error
	for attempt := 0; attempt < p.maxRetries; attempt++ {
		if err := p.limiter.Wait(ctx, name); err != nil {
			return model.SourceResponse{
				SourceID:     name,
				Succeeded:    false,
				ErrorMessage: err.Error(),
			}
		}

		resp, err := prov.Ask(ctx, AskRequest{Prompt: prompt})
		if err == nil {
			return model.SourceResponse{
				SourceID:  name,
				Succeeded: true,
				Text:      resp.Text,
			}
		}

		lastErr = err
		if !isRetryableError(err) {
			break
		}
		if attempt < p.maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			panelSleepFunc(backoff)
		}
	}

	return model.SourceResponse{
		SourceID:     name,
		Succeeded:    false,
		ErrorMessage: lastErr.Error(),
	}
}

// isRetryableError checks error strings for transient failures
func isRetryableError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "connection reset") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "status 429") ||
		strings.Contains(s, "status 500") ||
		strings.Contains(s, "status 502") ||
		strings.Contains(s, "status 503") ||
		strings.Contains(s, "overloaded")
}
