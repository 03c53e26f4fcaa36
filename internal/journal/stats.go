package journal

import (
	"sort"

	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/shopspring/decimal"
)

// accumulator folds entries for one group key.
type accumulator struct {
	totalTrades      int
	totalProfit      decimal.Decimal
	totalLotSize     decimal.Decimal
	profitableTrades int
	lossTrades       int
}

func (a *accumulator) add(entry types.TradeEntry) {
	profit := decimal.NewFromFloat(entry.DailyProfit)

	a.totalTrades++
	a.totalProfit = a.totalProfit.Add(profit)
	a.totalLotSize = a.totalLotSize.Add(decimal.NewFromFloat(entry.LotSize))

	// Break-even entries count toward totalTrades but neither side
	switch {
	case profit.IsPositive():
		a.profitableTrades++
	case profit.IsNegative():
		a.lossTrades++
	}
}

func (a *accumulator) finalize() types.Statistics {
	stats := types.Statistics{
		TotalTrades:      a.totalTrades,
		ProfitableTrades: a.profitableTrades,
		LossTrades:       a.lossTrades,
	}
	stats.TotalProfit, _ = a.totalProfit.Float64()
	stats.TotalLotSize, _ = a.totalLotSize.Float64()

	// Ratios stay at zero when nothing was folded in
	if a.totalTrades > 0 {
		total := decimal.NewFromInt(int64(a.totalTrades))
		stats.WinRate = decimal.NewFromInt(int64(a.profitableTrades)).
			Div(total).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
		stats.AverageProfit = a.totalProfit.Div(total).InexactFloat64()
	}

	return stats
}

// Aggregate folds all entries into a single statistics aggregate. The
// numeric fields are order-independent.
func Aggregate(entries []types.TradeEntry) types.Statistics {
	acc := &accumulator{}
	for _, entry := range entries {
		acc.add(entry)
	}

	return acc.finalize()
}

// AggregateBy folds entries into one aggregate per group key. Group keys
// appear in first-seen order; entries with an empty key are bucketed under
// UnknownGroupKey rather than dropped. GroupByNone yields a single group
// with an empty key.
func AggregateBy(entries []types.TradeEntry, groupBy types.GroupBy) []types.StatisticsGroup {
	var keys []string

	accumulators := make(map[string]*accumulator)

	for _, entry := range entries {
		key := groupKey(entry, groupBy)

		acc, ok := accumulators[key]
		if !ok {
			acc = &accumulator{}
			accumulators[key] = acc
			keys = append(keys, key)
		}

		acc.add(entry)
	}

	// A groupless aggregation over zero entries still yields one group
	if groupBy == types.GroupByNone && len(keys) == 0 {
		keys = append(keys, "")
		accumulators[""] = &accumulator{}
	}

	groups := make([]types.StatisticsGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, types.StatisticsGroup{
			Key:        key,
			Statistics: accumulators[key].finalize(),
		})
	}

	return groups
}

// TopByTradeCount returns the limit groups with the highest trade counts,
// descending, ties broken by first-seen order.
func TopByTradeCount(groups []types.StatisticsGroup, limit int) []types.StatisticsGroup {
	if limit <= 0 {
		return nil
	}

	ranked := make([]types.StatisticsGroup, len(groups))
	copy(ranked, groups)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Statistics.TotalTrades > ranked[j].Statistics.TotalTrades
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	return ranked[:limit]
}

func groupKey(entry types.TradeEntry, groupBy types.GroupBy) string {
	var key string

	switch groupBy {
	case types.GroupByAccount:
		key = entry.AccountID
	case types.GroupByAsset:
		key = entry.AssetID
	default:
		return ""
	}

	if key == "" {
		return types.UnknownGroupKey
	}

	return key
}
