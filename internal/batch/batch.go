// Package batch checks many claims concurrently over the worker pool.
// It sits above both the pool and the checker so the concurrency
// primitives in internal/worker stay free of domain dependencies.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"veridex/internal/checker"
	"veridex/internal/worker"
)

// ClaimChecker is the subset of the checker the batch processor needs
type ClaimChecker interface {
	Check(ctx context.Context, claim string) (*checker.Result, error)
}

// CheckJob represents a single claim check
type CheckJob struct {
	Claim   string
	Checker ClaimChecker
}

// Execute runs the claim check
func (j *CheckJob) Execute(ctx context.Context) worker.Result {
	result, err := j.Checker.Check(ctx, j.Claim)
	return &CheckResult{
		Claim:  j.Claim,
		Result: result,
		Error:  err,
	}
}

// CheckResult is the outcome of one batch entry
type CheckResult struct {
	Claim  string
	Result *checker.Result
	Error  error
}

// GetError returns the error from the check
func (r *CheckResult) GetError() error {
	return r.Error
}

// Processor checks many claims concurrently
type Processor struct {
	checker     ClaimChecker
	concurrency int
}

// NewProcessor creates a batch processor
func NewProcessor(c ClaimChecker, concurrency int) *Processor {
	if concurrency <= 0 {
		concurrency = 2
	}
	return &Processor{checker: c, concurrency: concurrency}
}

// ProcessFile checks every non-empty, non-comment line of a claims file
func (b *Processor) ProcessFile(ctx context.Context, path string) ([]*CheckResult, error) {
	claims, err := readClaims(path)
	if err != nil {
		return nil, err
	}
	return b.Process(ctx, claims), nil
}

// Process checks the given claims using the worker pool
func (b *Processor) Process(ctx context.Context, claims []string) []*CheckResult {
	pool := worker.NewPoolWithQueue(b.concurrency, len(claims))
	pool.Start()

	for _, claim := range claims {
		pool.Submit(&CheckJob{Claim: claim, Checker: b.checker})
	}

	var results []*CheckResult
	for _, r := range pool.Wait() {
		if cr, ok := r.(*CheckResult); ok {
			results = append(results, cr)
		}
	}
	return results
}

// readClaims reads one claim per line, skipping blanks and # comments
func readClaims(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open claims file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var claims []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		claims = append(claims, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read claims file: %w", err)
	}
	return claims, nil
}
