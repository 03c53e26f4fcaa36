package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"go.uber.org/zap"
)

// entryColumns is the scan order shared by every entry query.
const entryColumns = "transaction_id, timestamp, account_id, asset_id, start_balance, daily_profit, lot_size, notes, trade_date"

// DuckDBStore implements LedgerStore, AccountDirectory and AssetDirectory on
// a single DuckDB database. Pass ":memory:" as the path for an ephemeral
// store.
type DuckDBStore struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBStore opens the database at path and prepares the query builder.
// Initialize must be called before the store is used.
func NewDuckDBStore(path string, logger *logger.Logger) (*DuckDBStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to open database", err)
	}

	return &DuckDBStore{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Initialize creates the tables for entries, accounts and assets.
func (s *DuckDBStore) Initialize() error {
	// Sequence keeps insertion order observable across reads
	_, err := s.db.Exec(`CREATE SEQUENCE IF NOT EXISTS entry_seq`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to create sequence", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			seq BIGINT DEFAULT nextval('entry_seq'),
			transaction_id TEXT PRIMARY KEY,
			timestamp TIMESTAMP,
			account_id TEXT,
			asset_id TEXT,
			start_balance DOUBLE,
			daily_profit DOUBLE,
			end_balance DOUBLE,
			lot_size DOUBLE,
			notes TEXT,
			trade_date DATE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to create entries table", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS accounts (
			account_id TEXT PRIMARY KEY,
			name TEXT,
			owner_id TEXT,
			initial_capital DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to create accounts table", err)
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS assets (
			asset_id TEXT PRIMARY KEY,
			name TEXT,
			type TEXT,
			notes TEXT
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to create assets table", err)
	}

	return nil
}

// Append commits a single entry inside its own transaction.
func (s *DuckDBStore) Append(ctx context.Context, entry types.TradeEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to begin transaction", err)
	}

	insertQuery := s.sq.
		Insert("entries").
		Columns(
			"transaction_id", "timestamp", "account_id", "asset_id",
			"start_balance", "daily_profit", "end_balance", "lot_size",
			"notes", "trade_date",
		).
		Values(
			entry.TransactionID, entry.Timestamp, entry.AccountID, entry.AssetID,
			entry.StartBalance, entry.DailyProfit, entry.ComputeEndBalance(), entry.LotSize,
			entry.Notes, entry.TradeDate,
		).
		RunWith(tx)

	if _, err := insertQuery.ExecContext(ctx); err != nil {
		tx.Rollback()
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to insert entry", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to commit entry", err)
	}

	return nil
}

// ReadAll returns all entries in insertion order.
func (s *DuckDBStore) ReadAll(ctx context.Context) ([]types.TradeEntry, error) {
	query := s.sq.
		Select(entryColumns).
		From("entries").
		OrderBy("seq ASC").
		RunWith(s.db)

	return s.scanEntries(ctx, query)
}

// ReadByAccount returns the entries for one account in insertion order.
func (s *DuckDBStore) ReadByAccount(ctx context.Context, accountID string) ([]types.TradeEntry, error) {
	query := s.sq.
		Select(entryColumns).
		From("entries").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("seq ASC").
		RunWith(s.db)

	return s.scanEntries(ctx, query)
}

// ReadByAsset returns the entries for one asset in insertion order.
func (s *DuckDBStore) ReadByAsset(ctx context.Context, assetID string) ([]types.TradeEntry, error) {
	query := s.sq.
		Select(entryColumns).
		From("entries").
		Where(squirrel.Eq{"asset_id": assetID}).
		OrderBy("seq ASC").
		RunWith(s.db)

	return s.scanEntries(ctx, query)
}

func (s *DuckDBStore) scanEntries(ctx context.Context, query squirrel.SelectBuilder) ([]types.TradeEntry, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query entries", err)
	}
	defer rows.Close()

	var entries []types.TradeEntry

	for rows.Next() {
		var entry types.TradeEntry

		err := rows.Scan(
			&entry.TransactionID,
			&entry.Timestamp,
			&entry.AccountID,
			&entry.AssetID,
			&entry.StartBalance,
			&entry.DailyProfit,
			&entry.LotSize,
			&entry.Notes,
			&entry.TradeDate,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan entry", err)
		}

		// The stored end balance is never trusted on read
		entry.EndBalance = entry.ComputeEndBalance()

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating entries", err)
	}

	return entries, nil
}

// UpdateByKey patches the entry with the given transaction id. Patching the
// daily profit re-derives the stored end balance in the same statement.
func (s *DuckDBStore) UpdateByKey(ctx context.Context, transactionID string, patch EntryPatch) error {
	if patch.IsEmpty() {
		return errors.New(errors.ErrCodeInvalidParameter, "entry patch contains no fields")
	}

	update := s.sq.Update("entries").Where(squirrel.Eq{"transaction_id": transactionID})

	if patch.DailyProfit.IsSome() {
		profit := patch.DailyProfit.Unwrap()
		update = update.
			Set("daily_profit", profit).
			Set("end_balance", squirrel.Expr("start_balance + ?", profit))
	}

	if patch.LotSize.IsSome() {
		update = update.Set("lot_size", patch.LotSize.Unwrap())
	}

	if patch.Notes.IsSome() {
		update = update.Set("notes", patch.Notes.Unwrap())
	}

	result, err := update.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to update entry", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to read update result", err)
	}

	if affected == 0 {
		return errors.Newf(errors.ErrCodeEntryNotFound, "entry %s not found", transactionID)
	}

	return nil
}

// FindByID returns the account with the given id, or None.
func (s *DuckDBStore) FindByID(ctx context.Context, accountID string) (optional.Option[types.Account], error) {
	query := s.sq.
		Select("account_id", "name", "owner_id", "initial_capital").
		From("accounts").
		Where(squirrel.Eq{"account_id": accountID}).
		RunWith(s.db)

	var account types.Account

	err := query.QueryRowContext(ctx).Scan(
		&account.AccountID,
		&account.Name,
		&account.OwnerID,
		&account.InitialCapital,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return optional.None[types.Account](), nil
		}

		return optional.None[types.Account](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to query account", err)
	}

	return optional.Some(account), nil
}

// All returns every account.
func (s *DuckDBStore) All(ctx context.Context) ([]types.Account, error) {
	query := s.sq.
		Select("account_id", "name", "owner_id", "initial_capital").
		From("accounts").
		OrderBy("account_id").
		RunWith(s.db)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []types.Account

	for rows.Next() {
		var account types.Account
		if err := rows.Scan(&account.AccountID, &account.Name, &account.OwnerID, &account.InitialCapital); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan account", err)
		}

		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating accounts", err)
	}

	return accounts, nil
}

// Create registers a new account.
func (s *DuckDBStore) Create(ctx context.Context, account types.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	existing, err := s.FindByID(ctx, account.AccountID)
	if err != nil {
		return err
	}

	if existing.IsSome() {
		return errors.Newf(errors.ErrCodeAccountAlreadyExists, "account %s already exists", account.AccountID)
	}

	insert := s.sq.
		Insert("accounts").
		Columns("account_id", "name", "owner_id", "initial_capital").
		Values(account.AccountID, account.Name, account.OwnerID, account.InitialCapital).
		RunWith(s.db)

	if _, err := insert.ExecContext(ctx); err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to insert account", err)
	}

	return nil
}

// Accounts exposes the store as an AccountDirectory.
func (s *DuckDBStore) Accounts() AccountDirectory {
	return s
}

// Assets exposes the store as an AssetDirectory.
func (s *DuckDBStore) Assets() AssetDirectory {
	return &assetDirectory{store: s}
}

// assetDirectory adapts DuckDBStore to the AssetDirectory interface. A
// separate type is needed because the account and asset directories share
// method names.
type assetDirectory struct {
	store *DuckDBStore
}

// FindByID returns the asset with the given id, or None.
func (d *assetDirectory) FindByID(ctx context.Context, assetID string) (optional.Option[types.Asset], error) {
	query := d.store.sq.
		Select("asset_id", "name", "type", "notes").
		From("assets").
		Where(squirrel.Eq{"asset_id": assetID}).
		RunWith(d.store.db)

	var asset types.Asset

	err := query.QueryRowContext(ctx).Scan(&asset.AssetID, &asset.Name, &asset.Type, &asset.Notes)
	if err != nil {
		if err == sql.ErrNoRows {
			return optional.None[types.Asset](), nil
		}

		return optional.None[types.Asset](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to query asset", err)
	}

	return optional.Some(asset), nil
}

// All returns every asset.
func (d *assetDirectory) All(ctx context.Context) ([]types.Asset, error) {
	query := d.store.sq.
		Select("asset_id", "name", "type", "notes").
		From("assets").
		OrderBy("asset_id").
		RunWith(d.store.db)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query assets", err)
	}
	defer rows.Close()

	var assets []types.Asset

	for rows.Next() {
		var asset types.Asset
		if err := rows.Scan(&asset.AssetID, &asset.Name, &asset.Type, &asset.Notes); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan asset", err)
		}

		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating assets", err)
	}

	return assets, nil
}

// Create registers a new asset.
func (d *assetDirectory) Create(ctx context.Context, asset types.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}

	existing, err := d.FindByID(ctx, asset.AssetID)
	if err != nil {
		return err
	}

	if existing.IsSome() {
		return errors.Newf(errors.ErrCodeAssetAlreadyExists, "asset %s already exists", asset.AssetID)
	}

	insert := d.store.sq.
		Insert("assets").
		Columns("asset_id", "name", "type", "notes").
		Values(asset.AssetID, asset.Name, asset.Type, asset.Notes).
		RunWith(d.store.db)

	if _, err := insert.ExecContext(ctx); err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailed, "failed to insert asset", err)
	}

	return nil
}

// ExportParquet writes the ledger tables to Parquet files in the given
// directory.
func (s *DuckDBStore) ExportParquet(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, "failed to create directory", err)
	}

	// COPY is not expressible with the query builder
	for _, table := range []string{"entries", "accounts", "assets"} {
		target := filepath.Join(path, table+".parquet")

		_, err := s.db.Exec(fmt.Sprintf(`COPY %s TO '%s' (FORMAT PARQUET)`, table, target))
		if err != nil {
			return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to export %s to Parquet", table)
		}
	}

	s.logger.Info("exported journal to Parquet files", zap.String("path", path))

	return nil
}

// Cleanup resets the database state.
func (s *DuckDBStore) Cleanup() error {
	_, err := s.db.Exec(`
		DROP TABLE IF EXISTS entries;
		DROP TABLE IF EXISTS accounts;
		DROP TABLE IF EXISTS assets;
		DROP SEQUENCE IF EXISTS entry_seq;
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreInitFailed, "failed to cleanup tables", err)
	}

	return s.Initialize()
}

// Close closes the underlying database.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}
