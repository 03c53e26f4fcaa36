package journal

import (
	"context"

	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
)

// AccountBalance carries both balance derivations for one account. The two
// values can disagree when entries were recorded with inconsistent start
// balances; callers pick the derivation their summary path expects.
type AccountBalance struct {
	// AccountID is the account the balances belong to.
	AccountID string `yaml:"account_id" json:"account_id"`
	// CurrentBalance is the latest-entry derivation.
	CurrentBalance float64 `yaml:"current_balance" json:"current_balance"`
	// TotalProfitBalance is the additive derivation.
	TotalProfitBalance float64 `yaml:"total_profit_balance" json:"total_profit_balance"`
}

// GetStatistics recomputes statistics from the current entry set, optionally
// filtered to one account or asset and optionally grouped. Account-level
// groups carry the account's current balance.
func (c *Coordinator) GetStatistics(ctx context.Context, filter types.StatisticsFilter, groupBy types.GroupBy) ([]types.StatisticsGroup, error) {
	entries, err := c.filteredEntries(ctx, filter)
	if err != nil {
		return nil, err
	}

	// A filter to one account implies account-level output
	if filter.AccountID.IsSome() && groupBy == types.GroupByNone {
		groupBy = types.GroupByAccount
	}

	groups := AggregateBy(entries, groupBy)

	if groupBy == types.GroupByAccount {
		if err := c.fillCurrentBalances(ctx, entries, groups); err != nil {
			return nil, err
		}
	}

	return groups, nil
}

// PopularAssets returns the limit assets with the most recorded trades,
// descending, ties broken by first appearance in the ledger.
func (c *Coordinator) PopularAssets(ctx context.Context, limit int) ([]types.StatisticsGroup, error) {
	if limit <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidLimit, "limit must be positive, got %d", limit)
	}

	entries, err := c.ledger.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	return TopByTradeCount(AggregateBy(entries, types.GroupByAsset), limit), nil
}

// Balance returns both balance derivations for one account.
func (c *Coordinator) Balance(ctx context.Context, accountID string) (AccountBalance, error) {
	found, err := c.accounts.FindByID(ctx, accountID)
	if err != nil {
		return AccountBalance{}, err
	}

	if found.IsNone() {
		return AccountBalance{}, errors.Newf(errors.ErrCodeAccountNotFound, "account %s not found", accountID)
	}

	account := found.Unwrap()

	entries, err := c.ledger.ReadByAccount(ctx, accountID)
	if err != nil {
		return AccountBalance{}, err
	}

	return AccountBalance{
		AccountID:          accountID,
		CurrentBalance:     CurrentBalance(account, entries),
		TotalProfitBalance: TotalProfitBalance(account, entries),
	}, nil
}

// ListEntries returns entries in insertion order, optionally filtered to one
// account or asset.
func (c *Coordinator) ListEntries(ctx context.Context, filter types.StatisticsFilter) ([]types.TradeEntry, error) {
	return c.filteredEntries(ctx, filter)
}

func (c *Coordinator) filteredEntries(ctx context.Context, filter types.StatisticsFilter) ([]types.TradeEntry, error) {
	switch {
	case filter.AccountID.IsSome():
		return c.ledger.ReadByAccount(ctx, filter.AccountID.Unwrap())
	case filter.AssetID.IsSome():
		return c.ledger.ReadByAsset(ctx, filter.AssetID.Unwrap())
	default:
		return c.ledger.ReadAll(ctx)
	}
}

// fillCurrentBalances populates CurrentBalance on account-level groups.
// Accounts missing from the directory (including the unknown bucket) keep a
// zero balance.
func (c *Coordinator) fillCurrentBalances(ctx context.Context, entries []types.TradeEntry, groups []types.StatisticsGroup) error {
	for i, group := range groups {
		found, err := c.accounts.FindByID(ctx, group.Key)
		if err != nil {
			return err
		}

		if found.IsNone() {
			continue
		}

		var accountEntries []types.TradeEntry

		for _, entry := range entries {
			if entry.AccountID == group.Key {
				accountEntries = append(accountEntries, entry)
			}
		}

		groups[i].Statistics.CurrentBalance = CurrentBalance(found.Unwrap(), accountEntries)
	}

	return nil
}
