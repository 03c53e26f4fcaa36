// Package journal implements the batch ledger submission and statistics
// aggregation engine: row validation, balance derivation, entry aggregation
// and best-effort batch commits.
package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/shopspring/decimal"
)

// tradeDateLayout is the accepted wire format for trade dates.
const tradeDateLayout = "2006-01-02"

// ValidateEntry checks a single raw row against structural and business
// rules and the current account/asset directories. Malformed input never
// produces a Go error: every rejection is reported through the result's
// Errors slice, in check order, so the caller can map reasons back to the
// submitted row.
func ValidateEntry(raw types.RawEntry, accounts map[string]types.Account, assets map[string]types.Asset) types.ValidationResult {
	var reasons []string

	accountID := strings.TrimSpace(raw.AccountID)
	assetID := strings.TrimSpace(raw.AssetID)

	if accountID == "" {
		reasons = append(reasons, "missing required field account_id")
	}

	if assetID == "" {
		reasons = append(reasons, "missing required field asset_id")
	}

	startBalance, reasons := parseRequiredNumber(raw.StartBalance, "start_balance", reasons)
	dailyProfit, reasons := parseRequiredNumber(raw.DailyProfit, "daily_profit", reasons)
	lotSize, reasons := parseRequiredNumber(raw.LotSize, "lot_size", reasons)

	if raw.LotSize != "" && lotSize.IsNegative() {
		reasons = append(reasons, "lot_size must not be negative")
	}

	tradeDate := time.Now().UTC().Truncate(24 * time.Hour)
	if strings.TrimSpace(raw.TradeDate) != "" {
		parsed, err := time.Parse(tradeDateLayout, strings.TrimSpace(raw.TradeDate))
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("trade_date %q is not in YYYY-MM-DD format", raw.TradeDate))
		} else {
			tradeDate = parsed
		}
	}

	if accountID != "" {
		if _, ok := accounts[accountID]; !ok {
			reasons = append(reasons, fmt.Sprintf("account %q not found", accountID))
		}
	}

	if assetID != "" {
		if _, ok := assets[assetID]; !ok {
			reasons = append(reasons, fmt.Sprintf("asset %q not found", assetID))
		}
	}

	if len(reasons) > 0 {
		return types.ValidationResult{
			IsValid: false,
			Errors:  reasons,
		}
	}

	entry := types.TradeEntry{
		AccountID:    accountID,
		AssetID:      assetID,
		StartBalance: startBalance.InexactFloat64(),
		DailyProfit:  dailyProfit.InexactFloat64(),
		LotSize:      lotSize.InexactFloat64(),
		Notes:        raw.Notes,
		TradeDate:    tradeDate,
	}
	entry.EndBalance = entry.ComputeEndBalance()

	return types.ValidationResult{
		IsValid: true,
		Entry:   entry,
		Errors:  nil,
	}
}

// parseRequiredNumber parses one required numeric field, appending a reason
// for a missing or unparseable value. The zero decimal is returned whenever
// a reason was appended.
func parseRequiredNumber(value, field string, reasons []string) (decimal.Decimal, []string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, append(reasons, fmt.Sprintf("missing required field %s", field))
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, append(reasons, fmt.Sprintf("field %s has invalid number %q", field, value))
	}

	return parsed, reasons
}
