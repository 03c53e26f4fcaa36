package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StatisticsTestSuite struct {
	suite.Suite
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) TestWriteAndReadStatistics() {
	groups := []StatisticsGroup{
		{
			Key: "eurusd",
			Statistics: Statistics{
				TotalTrades:      3,
				TotalProfit:      45.5,
				TotalLotSize:     1.5,
				ProfitableTrades: 2,
				LossTrades:       1,
				WinRate:          66.67,
				AverageProfit:    15.17,
			},
		},
		{Key: "gbpusd", Statistics: Statistics{TotalTrades: 1, TotalProfit: -10, LossTrades: 1}},
	}

	path := filepath.Join(suite.T().TempDir(), "stats.yaml")
	suite.Require().NoError(WriteStatistics(path, groups))

	read, err := ReadStatistics(path)
	suite.Require().NoError(err)
	suite.Assert().Equal(groups, read)
}

func (suite *StatisticsTestSuite) TestReadStatisticsMissingFile() {
	_, err := ReadStatistics(filepath.Join(suite.T().TempDir(), "missing.yaml"))
	suite.Assert().Error(err)
}
