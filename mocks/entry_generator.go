package mocks

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-journal/internal/types"
)

// EntryGenerator generates realistic trade entries for testing.
type EntryGenerator struct {
	rng *rand.Rand
}

// NewEntryGenerator creates a new EntryGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewEntryGenerator(seed int64) *EntryGenerator {
	return &EntryGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how entries are generated.
type GeneratorConfig struct {
	// AccountIDs is the pool of account ids to draw from
	AccountIDs []string
	// AssetIDs is the pool of asset ids to draw from
	AssetIDs []string
	// StartDate is the trade date of the first entry
	StartDate time.Time
	// Count is the number of entries to generate
	Count int
	// StartBalance is the balance the first entry starts at
	StartBalance float64
	// MaxDailyMove bounds the absolute daily profit
	MaxDailyMove float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		AccountIDs:   []string{"acc-1", "acc-2"},
		AssetIDs:     []string{"eurusd", "gbpusd", "usdjpy"},
		StartDate:    time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		Count:        30,
		StartBalance: 10000,
		MaxDailyMove: 250,
	}
}

// Generate produces committed entries, one per day, walking the balance
// forward so that each entry's start balance is the previous entry's end
// balance.
func (g *EntryGenerator) Generate(config GeneratorConfig) []types.TradeEntry {
	entries := make([]types.TradeEntry, 0, config.Count)
	balance := config.StartBalance

	for i := 0; i < config.Count; i++ {
		profit := round2((g.rng.Float64()*2 - 1) * config.MaxDailyMove)
		tradeDate := config.StartDate.AddDate(0, 0, i)

		entry := types.TradeEntry{
			TransactionID: uuid.New().String(),
			Timestamp:     tradeDate.Add(17 * time.Hour),
			AccountID:     config.AccountIDs[g.rng.Intn(len(config.AccountIDs))],
			AssetID:       config.AssetIDs[g.rng.Intn(len(config.AssetIDs))],
			StartBalance:  balance,
			DailyProfit:   profit,
			LotSize:       round2(g.rng.Float64() * 2),
			TradeDate:     tradeDate,
		}
		entry.EndBalance = entry.ComputeEndBalance()

		entries = append(entries, entry)
		balance = entry.EndBalance
	}

	return entries
}

// GenerateRaw produces raw rows as the transport layer would submit them.
func (g *EntryGenerator) GenerateRaw(config GeneratorConfig) []types.RawEntry {
	rows := make([]types.RawEntry, 0, config.Count)

	for _, entry := range g.Generate(config) {
		rows = append(rows, types.RawEntry{
			AccountID:    entry.AccountID,
			AssetID:      entry.AssetID,
			StartBalance: fmt.Sprintf("%.2f", entry.StartBalance),
			DailyProfit:  fmt.Sprintf("%.2f", entry.DailyProfit),
			LotSize:      fmt.Sprintf("%.2f", entry.LotSize),
			TradeDate:    entry.TradeDate.Format("2006-01-02"),
		})
	}

	return rows
}

func round2(value float64) float64 {
	return float64(int(value*100)) / 100
}
