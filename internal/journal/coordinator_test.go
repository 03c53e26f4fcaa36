package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-journal/internal/journal/store"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/mocks"
	journalerrors "github.com/rxtech-lab/argo-journal/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CoordinatorTestSuite exercises batch submission against a real in-memory
// DuckDB store.
type CoordinatorTestSuite struct {
	suite.Suite
	store       *store.DuckDBStore
	coordinator *Coordinator
	logger      *logger.Logger
	ctx         context.Context
}

func TestCoordinatorSuite(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

func (suite *CoordinatorTestSuite) SetupSuite() {
	log, err := logger.NewLogger()
	suite.Require().NoError(err)
	suite.logger = log
	suite.ctx = context.Background()

	suite.store, err = store.NewDuckDBStore(":memory:", suite.logger)
	suite.Require().NoError(err)
}

func (suite *CoordinatorTestSuite) TearDownSuite() {
	if suite.store != nil {
		suite.store.Close()
	}
}

func (suite *CoordinatorTestSuite) SetupTest() {
	suite.Require().NoError(suite.store.Initialize())

	suite.coordinator = NewCoordinator(suite.store, suite.store.Accounts(), suite.store.Assets(), suite.logger)

	suite.Require().NoError(suite.store.Accounts().Create(suite.ctx, types.Account{
		AccountID:      "A1",
		Name:           "Main",
		OwnerID:        "user-1",
		InitialCapital: 1000,
	}))
	suite.Require().NoError(suite.store.Assets().Create(suite.ctx, types.Asset{
		AssetID: "X",
		Name:    "EUR/USD",
		Type:    "forex",
	}))
}

func (suite *CoordinatorTestSuite) TearDownTest() {
	suite.Require().NoError(suite.store.Cleanup())
}

func validRow(start, profit string) types.RawEntry {
	return types.RawEntry{
		AccountID:    "A1",
		AssetID:      "X",
		StartBalance: start,
		DailyProfit:  profit,
		LotSize:      "0.1",
		TradeDate:    "2025-03-10",
	}
}

func (suite *CoordinatorTestSuite) TestSubmitBatchAllSuccess() {
	rows := []types.RawEntry{
		validRow("1000", "50"),
		validRow("1050", "-20"),
	}

	result, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)
	suite.Equal(types.BatchStatusSuccess, result.OverallStatus)
	suite.Len(result.Results, 2)

	for i, row := range result.Results {
		suite.Equal(i, row.Index)
		suite.Equal(types.RowStatusSuccess, row.Status)
		suite.NotEmpty(row.TransactionID)
		suite.Empty(row.Error)
	}

	// Each committed row produced exactly one entry, in input order
	entries, err := suite.store.ReadAll(suite.ctx)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal(result.Results[0].TransactionID, entries[0].TransactionID)
	suite.Equal(result.Results[1].TransactionID, entries[1].TransactionID)
	suite.Equal(1050.0, entries[0].EndBalance)
	suite.Equal(1030.0, entries[1].EndBalance)
}

func (suite *CoordinatorTestSuite) TestSubmitBatchPartial() {
	rows := []types.RawEntry{
		{AccountID: "A1", AssetID: "X", StartBalance: "1000", DailyProfit: "50", LotSize: "0.1"},
		{AccountID: "A1", AssetID: "X", StartBalance: "", DailyProfit: "10", LotSize: "0.1"},
	}

	result, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)
	suite.Equal(types.BatchStatusPartial, result.OverallStatus)

	suite.Equal(types.RowStatusSuccess, result.Results[0].Status)
	suite.Equal(types.RowStatusFailed, result.Results[1].Status)
	suite.Equal(1, result.Results[1].Index)
	suite.Contains(result.Results[1].Error, "start_balance")

	entries, err := suite.store.ReadAll(suite.ctx)
	suite.NoError(err)
	suite.Len(entries, 1)
	suite.Equal(1050.0, entries[0].EndBalance)
}

func (suite *CoordinatorTestSuite) TestSubmitBatchAllFailed() {
	rows := []types.RawEntry{
		{AccountID: "A9", AssetID: "X", StartBalance: "1000", DailyProfit: "50", LotSize: "0.1"},
		{AccountID: "A1", AssetID: "X", StartBalance: "abc", DailyProfit: "10", LotSize: "0.1"},
	}

	result, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)
	suite.Equal(types.BatchStatusFailure, result.OverallStatus)
	suite.Len(result.Results, 2)

	entries, err := suite.store.ReadAll(suite.ctx)
	suite.NoError(err)
	suite.Empty(entries)
}

func (suite *CoordinatorTestSuite) TestSubmitBatchEmpty() {
	_, err := suite.coordinator.SubmitBatch(suite.ctx, nil)
	suite.Error(err)
	suite.Equal(journalerrors.ErrCodeEmptyBatch, journalerrors.GetCode(err))
}

func (suite *CoordinatorTestSuite) TestSubmitBatchNotifiesCommitListener() {
	var committed []types.TradeEntry

	suite.coordinator.SetCommitListener(func(entry types.TradeEntry) {
		committed = append(committed, entry)
	})

	rows := []types.RawEntry{
		validRow("1000", "50"),
		{AccountID: "A1", AssetID: "X", StartBalance: "", DailyProfit: "10", LotSize: "0.1"},
	}

	_, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)

	// Only the committed row reaches the listener
	suite.Len(committed, 1)
	suite.Equal(1050.0, committed[0].EndBalance)
}

func (suite *CoordinatorTestSuite) TestGetStatisticsIdempotent() {
	rows := []types.RawEntry{
		validRow("1000", "10"),
		validRow("1010", "-5"),
		validRow("1005", "0"),
	}

	_, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)

	first, err := suite.coordinator.GetStatistics(suite.ctx, types.StatisticsFilter{}, types.GroupByNone)
	suite.NoError(err)

	second, err := suite.coordinator.GetStatistics(suite.ctx, types.StatisticsFilter{}, types.GroupByNone)
	suite.NoError(err)

	suite.Equal(first, second)
	suite.Len(first, 1)
	suite.Equal(3, first[0].Statistics.TotalTrades)
	suite.InDelta(33.33, first[0].Statistics.WinRate, 0.01)
	suite.InDelta(1.67, first[0].Statistics.AverageProfit, 0.01)
}

func (suite *CoordinatorTestSuite) TestGetStatisticsByAccountFillsBalance() {
	_, err := suite.coordinator.SubmitBatch(suite.ctx, []types.RawEntry{validRow("1000", "50")})
	suite.NoError(err)

	groups, err := suite.coordinator.GetStatistics(suite.ctx, types.StatisticsFilter{
		AccountID: optional.Some("A1"),
	}, types.GroupByNone)
	suite.NoError(err)

	suite.Len(groups, 1)
	suite.Equal("A1", groups[0].Key)
	suite.Equal(1050.0, groups[0].Statistics.CurrentBalance)
}

func (suite *CoordinatorTestSuite) TestBalance() {
	_, err := suite.coordinator.SubmitBatch(suite.ctx, []types.RawEntry{
		validRow("1000", "50"),
	})
	suite.NoError(err)

	balance, err := suite.coordinator.Balance(suite.ctx, "A1")
	suite.NoError(err)
	suite.Equal(1050.0, balance.CurrentBalance)
	suite.Equal(1050.0, balance.TotalProfitBalance)
}

func (suite *CoordinatorTestSuite) TestBalanceNoEntries() {
	balance, err := suite.coordinator.Balance(suite.ctx, "A1")
	suite.NoError(err)
	suite.Equal(1000.0, balance.CurrentBalance)
	suite.Equal(1000.0, balance.TotalProfitBalance)
}

func (suite *CoordinatorTestSuite) TestBalanceUnknownAccount() {
	_, err := suite.coordinator.Balance(suite.ctx, "A9")
	suite.Error(err)
	suite.Equal(journalerrors.ErrCodeAccountNotFound, journalerrors.GetCode(err))
}

func (suite *CoordinatorTestSuite) TestPopularAssets() {
	suite.Require().NoError(suite.store.Assets().Create(suite.ctx, types.Asset{
		AssetID: "Y",
		Name:    "GBP/USD",
		Type:    "forex",
	}))

	rows := []types.RawEntry{
		validRow("1000", "50"),
		{AccountID: "A1", AssetID: "Y", StartBalance: "1050", DailyProfit: "5", LotSize: "0.1"},
		{AccountID: "A1", AssetID: "Y", StartBalance: "1055", DailyProfit: "5", LotSize: "0.1"},
	}

	_, err := suite.coordinator.SubmitBatch(suite.ctx, rows)
	suite.NoError(err)

	top, err := suite.coordinator.PopularAssets(suite.ctx, 1)
	suite.NoError(err)
	suite.Len(top, 1)
	suite.Equal("Y", top[0].Key)
	suite.Equal(2, top[0].Statistics.TotalTrades)
}

func (suite *CoordinatorTestSuite) TestPopularAssetsBadLimit() {
	_, err := suite.coordinator.PopularAssets(suite.ctx, 0)
	suite.Error(err)
	suite.Equal(journalerrors.ErrCodeInvalidLimit, journalerrors.GetCode(err))
}

// TestSubmitBatchPersistenceFailure injects store failures through mocks:
// a write error on one row must not block the next row.
func TestSubmitBatchPersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log, err := logger.NewLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	ledger := mocks.NewMockLedgerStore(ctrl)
	accounts := mocks.NewMockAccountDirectory(ctrl)
	assets := mocks.NewMockAssetDirectory(ctrl)

	accounts.EXPECT().All(gomock.Any()).Return([]types.Account{
		{AccountID: "A1", Name: "Main", OwnerID: "user-1", InitialCapital: 1000},
	}, nil)
	assets.EXPECT().All(gomock.Any()).Return([]types.Asset{
		{AssetID: "X", Name: "EUR/USD", Type: "forex"},
	}, nil)

	// First append fails, second succeeds
	first := ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("write conflict"))
	ledger.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).After(first)

	coordinator := NewCoordinator(ledger, accounts, assets, log)

	result, err := coordinator.SubmitBatch(context.Background(), []types.RawEntry{
		validRow("1000", "50"),
		validRow("1050", "10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OverallStatus != types.BatchStatusPartial {
		t.Fatalf("expected partial status, got %s", result.OverallStatus)
	}

	if result.Results[0].Status != types.RowStatusFailed {
		t.Fatalf("expected row 0 to fail")
	}

	if result.Results[0].Error == "" || result.Results[1].Status != types.RowStatusSuccess {
		t.Fatalf("unexpected row results: %+v", result.Results)
	}
}
