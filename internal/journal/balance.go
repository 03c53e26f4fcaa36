package journal

import (
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/shopspring/decimal"
)

// CurrentBalance derives an account's balance from its entry history: the
// end balance of the chronologically latest entry, or the initial capital
// when the account has no entries yet. Latest means the greatest trade date,
// ties broken by timestamp, remaining ties by insertion order (entries must
// be passed in insertion order).
func CurrentBalance(account types.Account, entries []types.TradeEntry) float64 {
	if len(entries) == 0 {
		return account.InitialCapital
	}

	latest := entries[0]
	for _, entry := range entries[1:] {
		if supersedes(entry, latest) {
			latest = entry
		}
	}

	return latest.ComputeEndBalance()
}

// TotalProfitBalance derives an account's balance additively: initial
// capital plus the sum of all daily profits. This is the derivation the
// legacy summary path uses; CurrentBalance and TotalProfitBalance are both
// part of the public contract and are deliberately not unified.
func TotalProfitBalance(account types.Account, entries []types.TradeEntry) float64 {
	total := decimal.NewFromFloat(account.InitialCapital)

	for _, entry := range entries {
		total = total.Add(decimal.NewFromFloat(entry.DailyProfit))
	}

	result, _ := total.Float64()

	return result
}

// supersedes reports whether candidate is chronologically at or after
// current. Exact date and timestamp ties resolve to the candidate, which by
// construction was inserted later.
func supersedes(candidate, current types.TradeEntry) bool {
	if !candidate.TradeDate.Equal(current.TradeDate) {
		return candidate.TradeDate.After(current.TradeDate)
	}

	if !candidate.Timestamp.Equal(current.Timestamp) {
		return candidate.Timestamp.After(current.Timestamp)
	}

	return true
}
