package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/coordinet/internal/cli"
	"github.com/dmitrijs2005/coordinet/internal/config"
	"github.com/dmitrijs2005/coordinet/internal/datastore"
	"github.com/dmitrijs2005/coordinet/internal/filex"
	"github.com/dmitrijs2005/coordinet/internal/logging"
	"github.com/dmitrijs2005/coordinet/internal/storage"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "coordinet stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return err
	}

	db, err := storage.Open(ctx, cfg.DatabasePath, cfg.BusyTimeout)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info(ctx, "database opened", "path", cfg.DatabasePath)

	store := datastore.New(
		storage.NewSQLiteRepository(db),
		datastore.WithLogger(logger),
		datastore.WithKeyPrefix(cfg.KeyPrefix),
		datastore.WithConflictRetries(cfg.ConflictRetries, cfg.ConflictBackoff),
	)

	return cli.NewApp(store, logger, os.Stdin, os.Stdout).Run(ctx)
}
