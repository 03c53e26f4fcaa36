package journal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-journal/internal/journal/store"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"go.uber.org/zap"
)

// CommitListener is notified after each successfully committed entry.
type CommitListener func(entry types.TradeEntry)

// Coordinator orchestrates validation, persistence and partial-failure
// reporting for batch submissions, and answers balance and statistics
// queries. It holds no state between calls: balances and statistics are
// recomputed from the store on demand.
type Coordinator struct {
	ledger   store.LedgerStore
	accounts store.AccountDirectory
	assets   store.AssetDirectory
	logger   *logger.Logger
	listener CommitListener
}

// NewCoordinator creates a coordinator over the given store and directories.
func NewCoordinator(
	ledger store.LedgerStore,
	accounts store.AccountDirectory,
	assets store.AssetDirectory,
	logger *logger.Logger,
) *Coordinator {
	return &Coordinator{
		ledger:   ledger,
		accounts: accounts,
		assets:   assets,
		logger:   logger,
	}
}

// SetCommitListener registers a listener invoked for every committed entry.
// Used by the server to stream commits to websocket subscribers.
func (c *Coordinator) SetCommitListener(listener CommitListener) {
	c.listener = listener
}

// SubmitBatch validates and commits a batch of raw rows in input order.
// Rows are independent: a failed row never blocks the rows after it, and
// there is no batch-wide rollback. An empty batch is rejected outright with
// no partial result. The returned error is non-nil only when the whole call
// failed before any row was attempted.
func (c *Coordinator) SubmitBatch(ctx context.Context, rows []types.RawEntry) (types.BatchResult, error) {
	if len(rows) == 0 {
		return types.BatchResult{}, errors.New(errors.ErrCodeEmptyBatch, "batch contains no rows")
	}

	accounts, assets, err := c.loadDirectories(ctx)
	if err != nil {
		return types.BatchResult{}, err
	}

	result := types.BatchResult{
		Results: make([]types.RowResult, 0, len(rows)),
	}

	for index, raw := range rows {
		result.Results = append(result.Results, c.submitRow(ctx, index, raw, accounts, assets))
	}

	result.OverallStatus = result.DeriveStatus()

	c.logger.Info("batch submission processed",
		zap.Int("rows", len(rows)),
		zap.Int("succeeded", result.SucceededCount()),
		zap.Int("failed", result.FailedCount()),
		zap.String("status", string(result.OverallStatus)),
	)

	return result, nil
}

// submitRow validates and commits one row, producing its outcome. The
// transaction id is generated here, once, at commit time.
func (c *Coordinator) submitRow(
	ctx context.Context,
	index int,
	raw types.RawEntry,
	accounts map[string]types.Account,
	assets map[string]types.Asset,
) types.RowResult {
	validation := ValidateEntry(raw, accounts, assets)
	if !validation.IsValid {
		return types.RowResult{
			Index:  index,
			Status: types.RowStatusFailed,
			Error:  errors.Newf(errors.ErrCodeValidationFailed, "%s", strings.Join(validation.Errors, "; ")).Error(),
		}
	}

	entry := validation.Entry
	entry.TransactionID = uuid.New().String()
	entry.Timestamp = time.Now().UTC()

	if err := c.ledger.Append(ctx, entry); err != nil {
		c.logger.Warn("entry commit failed",
			zap.Int("row", index),
			zap.String("account_id", entry.AccountID),
			zap.Error(err),
		)

		return types.RowResult{
			Index:  index,
			Status: types.RowStatusFailed,
			Error:  errors.Wrap(errors.ErrCodePersistenceFailed, "failed to commit entry", err).Error(),
		}
	}

	if c.listener != nil {
		c.listener(entry)
	}

	return types.RowResult{
		Index:         index,
		Status:        types.RowStatusSuccess,
		TransactionID: entry.TransactionID,
	}
}

// loadDirectories snapshots both directories into lookup maps for
// referential checks. The snapshot is taken once per batch.
func (c *Coordinator) loadDirectories(ctx context.Context) (map[string]types.Account, map[string]types.Asset, error) {
	accountList, err := c.accounts.All(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to load account directory", err)
	}

	assetList, err := c.assets.All(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to load asset directory", err)
	}

	accounts := make(map[string]types.Account, len(accountList))
	for _, account := range accountList {
		accounts[account.AccountID] = account
	}

	assets := make(map[string]types.Asset, len(assetList))
	for _, asset := range assetList {
		assets[asset.AssetID] = asset
	}

	return accounts, assets, nil
}
