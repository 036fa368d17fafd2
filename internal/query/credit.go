package query

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"veridex/internal/util"
)

// CreditBalance is a snapshot of a provider account's remaining credit
type CreditBalance struct {
	Available bool
	Balance   float64
	Currency  string
}

// CreditReporter is implemented by providers whose API exposes an
// account balance endpoint. The registry checks it on every refresh.
type CreditReporter interface {
	Provider
	CreditBalance(ctx context.Context) (*CreditBalance, error)
}

// deepseekBalance mirrors the DeepSeek /user/balance response. Older API
// revisions carried total_balance at the top level; current ones nest it
// under balance_infos, so both shapes are read.
type deepseekBalance struct {
	IsAvailable  bool    `json:"is_available"`
	TotalBalance float64 `json:"total_balance"`
	BalanceInfos []struct {
		Currency     string `json:"currency"`
		TotalBalance string `json:"total_balance"`
	} `json:"balance_infos"`
}

// CreditBalance queries the account balance endpoint. Among the
// OpenAI-compatible providers only DeepSeek exposes one.
func (p *OpenAICompatProvider) CreditBalance(ctx context.Context) (*CreditBalance, error) {
	if p.balanceURL == "" {
		return nil, fmt.Errorf("%s does not expose a balance endpoint", p.name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.balanceURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	client := util.NewHTTPClient(timeout, p.config.HTTPProxy, p.config.HTTPSProxy, p.config.NoProxy)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s balance request failed: %w", p.name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s balance error: status %d", p.name, resp.StatusCode)
	}

	var bal deepseekBalance
	if err := json.Unmarshal(body, &bal); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}

	balance := bal.TotalBalance
	currency := ""
	if balance == 0 && len(bal.BalanceInfos) > 0 {
		if parsed, perr := strconv.ParseFloat(bal.BalanceInfos[0].TotalBalance, 64); perr == nil {
			balance = parsed
			currency = bal.BalanceInfos[0].Currency
		}
	}

	return &CreditBalance{
		Available: bal.IsAvailable || balance > 0,
		Balance:   balance,
		Currency:  currency,
	}, nil
}
