package journal

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	accounts map[string]types.Account
	assets   map[string]types.Asset
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (suite *ValidatorTestSuite) SetupTest() {
	suite.accounts = map[string]types.Account{
		"A1": {AccountID: "A1", Name: "Main", OwnerID: "user-1", InitialCapital: 1000},
	}
	suite.assets = map[string]types.Asset{
		"X": {AssetID: "X", Name: "EUR/USD", Type: "forex"},
	}
}

func (suite *ValidatorTestSuite) TestValidRow() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "1000",
		DailyProfit:  "50",
		LotSize:      "0.1",
		Notes:        "breakout day",
		TradeDate:    "2025-03-10",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.True(result.IsValid)
	suite.Empty(result.Errors)
	suite.Equal("A1", result.Entry.AccountID)
	suite.Equal("X", result.Entry.AssetID)
	suite.Equal(1000.0, result.Entry.StartBalance)
	suite.Equal(50.0, result.Entry.DailyProfit)
	suite.Equal(1050.0, result.Entry.EndBalance)
	suite.Equal(0.1, result.Entry.LotSize)
	suite.Equal("breakout day", result.Entry.Notes)
	suite.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), result.Entry.TradeDate)

	// The transaction id is assigned at commit, never by the validator
	suite.Empty(result.Entry.TransactionID)
}

func (suite *ValidatorTestSuite) TestMissingStartBalance() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "",
		DailyProfit:  "10",
		LotSize:      "0.1",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	suite.Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "start_balance")
}

func (suite *ValidatorTestSuite) TestAllFieldsMissing() {
	result := ValidateEntry(types.RawEntry{}, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	// Reasons appear in check order
	suite.Equal([]string{
		"missing required field account_id",
		"missing required field asset_id",
		"missing required field start_balance",
		"missing required field daily_profit",
		"missing required field lot_size",
	}, result.Errors)
}

func (suite *ValidatorTestSuite) TestUnparseableNumbers() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "one thousand",
		DailyProfit:  "NaN",
		LotSize:      "0.1",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	suite.Len(result.Errors, 2)
	suite.Contains(result.Errors[0], "start_balance")
	suite.Contains(result.Errors[1], "daily_profit")
}

func (suite *ValidatorTestSuite) TestNegativeLotSize() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "1000",
		DailyProfit:  "50",
		LotSize:      "-0.5",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	suite.Len(result.Errors, 1)
	suite.Contains(result.Errors[0], "lot_size")
}

func (suite *ValidatorTestSuite) TestNegativeProfitIsValid() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "1000",
		DailyProfit:  "-75.25",
		LotSize:      "0.1",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.True(result.IsValid)
	suite.Equal(924.75, result.Entry.EndBalance)
}

func (suite *ValidatorTestSuite) TestUnknownReferences() {
	raw := types.RawEntry{
		AccountID:    "A9",
		AssetID:      "Z",
		StartBalance: "1000",
		DailyProfit:  "50",
		LotSize:      "0.1",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	suite.Equal([]string{
		`account "A9" not found`,
		`asset "Z" not found`,
	}, result.Errors)
}

func (suite *ValidatorTestSuite) TestBadTradeDate() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "1000",
		DailyProfit:  "50",
		LotSize:      "0.1",
		TradeDate:    "10/03/2025",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.False(result.IsValid)
	suite.Contains(result.Errors[0], "trade_date")
}

func (suite *ValidatorTestSuite) TestTradeDateDefaultsToToday() {
	raw := types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: "1000",
		DailyProfit:  "50",
		LotSize:      "0.1",
	}

	result := ValidateEntry(raw, suite.accounts, suite.assets)

	suite.True(result.IsValid)
	suite.Equal(time.Now().UTC().Truncate(24*time.Hour), result.Entry.TradeDate)
}
