package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawEntry is the untyped row shape received from the transport layer or a
// CSV import. All numeric fields arrive as strings and are only converted
// once the validator has accepted the row.
type RawEntry struct {
	// AccountID references an existing account.
	AccountID string `yaml:"account_id" json:"account_id" csv:"account_id"`
	// AssetID references an existing asset.
	AssetID string `yaml:"asset_id" json:"asset_id" csv:"asset_id"`
	// StartBalance is the account balance at the start of the trading day.
	StartBalance string `yaml:"start_balance" json:"start_balance" csv:"start_balance"`
	// DailyProfit is the signed profit for the trading day.
	DailyProfit string `yaml:"daily_profit" json:"daily_profit" csv:"daily_profit"`
	// LotSize is the traded lot size, must be non-negative.
	LotSize string `yaml:"lot_size" json:"lot_size" csv:"lot_size"`
	// Notes holds free-form notes for the entry.
	Notes string `yaml:"notes" json:"notes" csv:"notes"`
	// TradeDate is the trading day in YYYY-MM-DD format. Defaults to the
	// submission day when empty.
	TradeDate string `yaml:"trade_date" json:"trade_date" csv:"trade_date"`
}

// TradeEntry is one recorded trading day's result for an account/asset pair.
// Entries are append-only: a correction is a new entry, not a mutation.
type TradeEntry struct {
	// TransactionID is assigned once at commit time and never reused.
	TransactionID string `yaml:"transaction_id" json:"transaction_id"`
	// Timestamp is when the entry was committed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// AccountID references the account this entry belongs to.
	AccountID string `yaml:"account_id" json:"account_id"`
	// AssetID references the asset that was traded.
	AssetID string `yaml:"asset_id" json:"asset_id"`
	// StartBalance is the account balance at the start of the trading day.
	StartBalance float64 `yaml:"start_balance" json:"start_balance"`
	// DailyProfit is the signed profit for the trading day.
	DailyProfit float64 `yaml:"daily_profit" json:"daily_profit"`
	// EndBalance is always StartBalance + DailyProfit. It is recomputed on
	// read and never independently trusted.
	EndBalance float64 `yaml:"end_balance" json:"end_balance"`
	// LotSize is the traded lot size.
	LotSize float64 `yaml:"lot_size" json:"lot_size"`
	// Notes holds free-form notes for the entry.
	Notes string `yaml:"notes" json:"notes"`
	// TradeDate is the trading day this entry records.
	TradeDate time.Time `yaml:"trade_date" json:"trade_date"`
}

// ComputeEndBalance derives the end balance from the start balance and the
// daily profit using decimal arithmetic to avoid float drift.
func (e *TradeEntry) ComputeEndBalance() float64 {
	end, _ := decimal.NewFromFloat(e.StartBalance).
		Add(decimal.NewFromFloat(e.DailyProfit)).
		Float64()

	return end
}

// ValidationResult is the outcome of validating a single raw row. Malformed
// input never produces a Go error, only IsValid=false with ordered,
// human-readable reasons.
type ValidationResult struct {
	// IsValid is true when the row passed all structural and referential checks.
	IsValid bool `yaml:"is_valid" json:"is_valid"`
	// Entry is the normalized entry, without a transaction id. Only
	// meaningful when IsValid is true.
	Entry TradeEntry `yaml:"entry" json:"entry"`
	// Errors lists the rejection reasons in check order.
	Errors []string `yaml:"errors" json:"errors"`
}
