package types

import (
	"fmt"
	"os"

	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"
)

// GroupBy selects how entries are bucketed during aggregation.
type GroupBy string

const (
	// GroupByNone folds all entries into a single aggregate.
	GroupByNone GroupBy = ""
	// GroupByAccount maintains one accumulator per account id.
	GroupByAccount GroupBy = "account"
	// GroupByAsset maintains one accumulator per asset id.
	GroupByAsset GroupBy = "asset"
)

// UnknownGroupKey is the bucket used for entries whose group key is empty.
// Such entries are counted, not dropped.
const UnknownGroupKey = "unknown"

// Statistics is the derived summary of a set of entries. It is recomputed
// on demand and never persisted.
type Statistics struct {
	// TotalTrades is the number of entries folded in.
	TotalTrades int `yaml:"total_trades" json:"total_trades"`
	// TotalProfit is the sum of all daily profits.
	TotalProfit float64 `yaml:"total_profit" json:"total_profit"`
	// TotalLotSize is the sum of all lot sizes.
	TotalLotSize float64 `yaml:"total_lot_size" json:"total_lot_size"`
	// ProfitableTrades counts entries with a positive daily profit.
	ProfitableTrades int `yaml:"profitable_trades" json:"profitable_trades"`
	// LossTrades counts entries with a negative daily profit. Break-even
	// entries increment neither counter.
	LossTrades int `yaml:"loss_trades" json:"loss_trades"`
	// WinRate is ProfitableTrades / TotalTrades * 100. Zero when there are
	// no trades.
	WinRate float64 `yaml:"win_rate" json:"win_rate"`
	// AverageProfit is TotalProfit / TotalTrades. Zero when there are no
	// trades.
	AverageProfit float64 `yaml:"average_profit" json:"average_profit"`
	// CurrentBalance is the derived balance for the group's account. Only
	// populated for account-level statistics.
	CurrentBalance float64 `yaml:"current_balance" json:"current_balance"`
}

// StatisticsGroup pairs a group key with its statistics. Grouped output is a
// slice so that first-seen key ordering survives serialization.
type StatisticsGroup struct {
	// Key is the account or asset id, or UnknownGroupKey.
	Key string `yaml:"key" json:"key"`
	// Statistics is the aggregate for this key.
	Statistics Statistics `yaml:"statistics" json:"statistics"`
}

// StatisticsFilter narrows a statistics query to one account or one asset.
type StatisticsFilter struct {
	// AccountID filters entries to a single account when set.
	AccountID optional.Option[string] `yaml:"account_id" json:"account_id"`
	// AssetID filters entries to a single asset when set.
	AssetID optional.Option[string] `yaml:"asset_id" json:"asset_id"`
}

// WriteStatistics writes aggregated statistics to a YAML file.
func WriteStatistics(path string, groups []StatisticsGroup) error {
	data, err := yaml.Marshal(groups)
	if err != nil {
		return fmt.Errorf("failed to marshal statistics to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write statistics to file: %w", err)
	}

	return nil
}

// ReadStatistics reads aggregated statistics from a YAML file.
func ReadStatistics(path string) ([]StatisticsGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics file: %w", err)
	}

	var groups []StatisticsGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statistics: %w", err)
	}

	return groups, nil
}
