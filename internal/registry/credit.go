package registry

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"veridex/internal/cache"
	"veridex/internal/query"
)

const creditKey = "credit_status"

// fullBalance is the funded account level treated as 100%, matching the
// $10 top-up the panel runs on
const fullBalance = 10.0

// Credit status levels, battery style
const (
	CreditGreen   = "green"
	CreditYellow  = "yellow"
	CreditRed     = "red"
	CreditUnknown = "unknown"
)

// CreditStatus is the persisted credit snapshot served to clients
type CreditStatus struct {
	Status      string    `json:"status"`
	Icon        string    `json:"icon"`
	Percentage  int       `json:"percentage"`
	Balance     float64   `json:"balance"`
	Currency    string    `json:"currency,omitempty"`
	Provider    string    `json:"provider,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// UnknownCredit is the status when no balance could be read
func UnknownCredit() CreditStatus {
	return CreditStatus{Status: CreditUnknown, Icon: "fa-battery"}
}

// CheckCredits queries the first provider that reports an account balance
// and persists the graded snapshot. A failed check yields an unknown
// status and leaves any cached snapshot untouched.
func (r *Registry) CheckCredits(ctx context.Context, providers []query.Provider) CreditStatus {
	for _, prov := range providers {
		reporter, ok := prov.(query.CreditReporter)
		if !ok {
			continue
		}

		bal, err := reporter.CreditBalance(ctx)
		if err != nil {
			continue
		}

		status := gradeCredit(bal)
		status.Provider = strings.ToLower(prov.Name())
		status.LastUpdated = time.Now().UTC()

		if r.store != nil {
			if data, err := json.Marshal(status); err == nil {
				_ = r.store.Set(cache.Key(creditKey), data, r.ttl)
			}
		}
		return status
	}
	return UnknownCredit()
}

// LoadCredits returns the cached credit snapshot, if one exists
func (r *Registry) LoadCredits() (CreditStatus, bool) {
	if r.store == nil {
		return UnknownCredit(), false
	}

	data, found := r.store.Get(cache.Key(creditKey))
	if !found {
		return UnknownCredit(), false
	}

	var status CreditStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return UnknownCredit(), false
	}
	return status, true
}

// gradeCredit maps a balance to its battery-style status against the
// funded level. Percentages above 100 are reported as-is.
func gradeCredit(bal *query.CreditBalance) CreditStatus {
	pct := int(math.Round(bal.Balance / fullBalance * 100))

	status := CreditStatus{
		Percentage: pct,
		Balance:    bal.Balance,
		Currency:   bal.Currency,
	}
	switch {
	case pct > 60:
		status.Status = CreditGreen
		status.Icon = "fa-battery-full"
	case pct > 10:
		status.Status = CreditYellow
		status.Icon = "fa-battery-half"
	default:
		status.Status = CreditRed
		status.Icon = "fa-battery-quarter"
	}
	return status
}
