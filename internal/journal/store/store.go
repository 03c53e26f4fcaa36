// Package store persists journal entries and the account/asset directories.
package store

import (
	"context"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-journal/internal/types"
)

// LedgerStore is the persistence contract for trade entries. Entries are
// append-only from the journal's perspective; UpdateByKey exists only for
// administrative correction.
type LedgerStore interface {
	// ReadAll returns all entries in insertion order.
	ReadAll(ctx context.Context) ([]types.TradeEntry, error)
	// ReadByAccount returns the entries for one account in insertion order.
	ReadByAccount(ctx context.Context, accountID string) ([]types.TradeEntry, error)
	// ReadByAsset returns the entries for one asset in insertion order.
	ReadByAsset(ctx context.Context, assetID string) ([]types.TradeEntry, error)
	// Append commits a single entry.
	Append(ctx context.Context, entry types.TradeEntry) error
	// UpdateByKey patches the entry with the given transaction id.
	UpdateByKey(ctx context.Context, transactionID string, patch EntryPatch) error
}

// AccountDirectory is the lookup contract for account records.
type AccountDirectory interface {
	// FindByID returns the account with the given id, or None.
	FindByID(ctx context.Context, accountID string) (optional.Option[types.Account], error)
	// All returns every account.
	All(ctx context.Context) ([]types.Account, error)
	// Create registers a new account.
	Create(ctx context.Context, account types.Account) error
}

// AssetDirectory is the lookup contract for asset records.
type AssetDirectory interface {
	// FindByID returns the asset with the given id, or None.
	FindByID(ctx context.Context, assetID string) (optional.Option[types.Asset], error)
	// All returns every asset.
	All(ctx context.Context) ([]types.Asset, error)
	// Create registers a new asset.
	Create(ctx context.Context, asset types.Asset) error
}

// EntryPatch is a partial update for an entry. Unset fields are left
// untouched. Patching DailyProfit also re-derives the stored end balance.
type EntryPatch struct {
	DailyProfit optional.Option[float64]
	LotSize     optional.Option[float64]
	Notes       optional.Option[string]
}

// IsEmpty reports whether the patch would change nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.DailyProfit.IsNone() && p.LotSize.IsNone() && p.Notes.IsNone()
}
