package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rxtech-lab/argo-journal/internal/journal"
	"github.com/rxtech-lab/argo-journal/internal/journal/store"
	"github.com/rxtech-lab/argo-journal/internal/logger"
	"github.com/rxtech-lab/argo-journal/internal/server"
	"github.com/rxtech-lab/argo-journal/internal/version"
	"github.com/urfave/cli/v3"
)

// serveAction loads the configuration, opens the ledger store and runs
// the HTTP API until interrupted.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	listenAddr := cmd.String("listen")
	dbPath := cmd.String("db")

	var config journal.Config
	if configPath != "" {
		loaded, err := journal.LoadConfig(configPath)
		if err != nil {
			return err
		}
		config = loaded
	} else {
		config = journal.EmptyConfig()
	}

	// Flags override the config file
	if listenAddr != "" {
		config.ListenAddr = listenAddr
	}
	if dbPath != "" {
		config.DatabasePath = dbPath
	}

	if err := config.Validate(); err != nil {
		return err
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	db, err := store.NewDuckDBStore(config.DatabasePath, appLogger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		return err
	}

	coordinator := journal.NewCoordinator(db, db.Accounts(), db.Assets(), appLogger)
	srv := server.NewServer(coordinator, db.Accounts(), db.Assets(), db, config, appLogger)

	if err := srv.Start(); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func main() {
	cmd := &cli.Command{
		Name:    "journal-server",
		Usage:   "Serve the trade journal HTTP API",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Listen address, overrides the config file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the DuckDB database file, overrides the config file",
			},
		},
		Action: serveAction,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
