package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rxtech-lab/argo-journal/internal/journal"
	"github.com/rxtech-lab/argo-journal/internal/journal/store"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
)

// csvColumns is the required header of an import file, in order.
var csvColumns = []string{
	"account_id",
	"asset_id",
	"start_balance",
	"daily_profit",
	"lot_size",
	"notes",
	"trade_date",
}

// readRows parses the CSV file into raw entries. The header row must
// match csvColumns exactly.
func readRows(path string) ([]types.RawEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImportBadInput, "failed to open import file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImportBadInput, "failed to read header row", err)
	}

	if len(header) != len(csvColumns) {
		return nil, errors.Newf(errors.ErrCodeImportBadInput, "expected %d columns, got %d", len(csvColumns), len(header))
	}
	for i, name := range csvColumns {
		if header[i] != name {
			return nil, errors.Newf(errors.ErrCodeImportBadInput, "column %d must be %q, got %q", i, name, header[i])
		}
	}

	var rows []types.RawEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeImportBadInput, "failed to read row", err)
		}

		rows = append(rows, types.RawEntry{
			AccountID:    record[0],
			AssetID:      record[1],
			StartBalance: record[2],
			DailyProfit:  record[3],
			LotSize:      record[4],
			Notes:        record[5],
			TradeDate:    record[6],
		})
	}

	return rows, nil
}

// importAction reads the CSV file and submits it in chunks so one bad
// row never blocks the rest of the file.
func importAction(ctx context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	dbPath := cmd.String("db")
	batchSize := int(cmd.Int("batch-size"))

	if batchSize <= 0 {
		return errors.Newf(errors.ErrCodeInvalidParameter, "batch size must be positive, got %d", batchSize)
	}

	rows, err := readRows(inputPath)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return errors.New(errors.ErrCodeImportBadInput, "import file has no data rows")
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	db, err := store.NewDuckDBStore(dbPath, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		return err
	}

	coordinator := journal.NewCoordinator(db, db.Accounts(), db.Assets(), appLogger)

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetDescription(fmt.Sprintf("Importing %s", inputPath)),
		progressbar.OptionShowCount(),
	)

	succeeded := 0
	failed := 0

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		result, err := coordinator.SubmitBatch(ctx, rows[start:end])
		if err != nil {
			return errors.Wrap(errors.ErrCodeImportFailed, "batch submission failed", err)
		}

		succeeded += result.SucceededCount()
		failed += result.FailedCount()

		for _, row := range result.Results {
			if row.Status == types.RowStatusFailed {
				fmt.Fprintf(os.Stderr, "row %d: %s\n", start+row.Index+1, row.Error)
			}
		}

		if err := bar.Add(end - start); err != nil {
			return err
		}
	}

	fmt.Printf("\nImported %d rows, %d failed\n", succeeded, failed)

	if statsPath := cmd.String("stats"); statsPath != "" {
		groups, err := coordinator.GetStatistics(ctx, types.StatisticsFilter{}, types.GroupByAsset)
		if err != nil {
			return err
		}

		if err := types.WriteStatistics(statsPath, groups); err != nil {
			return err
		}

		fmt.Printf("Wrote per-asset statistics to %s\n", statsPath)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "journal-import",
		Usage: "Bulk import trade entries from a CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the CSV file to import",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the DuckDB database file",
				Value:   "data/journal.duckdb",
			},
			&cli.StringFlag{
				Name:  "stats",
				Usage: "Write per-asset statistics to this YAML file after the import",
			},
			&cli.IntFlag{
				Name:    "batch-size",
				Aliases: []string{"b"},
				Usage:   "Number of rows submitted per batch",
				Value:   500,
			},
		},
		Action: importAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
