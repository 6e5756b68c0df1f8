package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/trungle-dev/sheetbook/internal/bootstrap"
	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/config"
	"github.com/trungle-dev/sheetbook/internal/services"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
	"github.com/trungle-dev/sheetbook/internal/store"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// One scheduler pass per invocation; cron or Cloud Scheduler owns the cadence.
func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// storage
	gs := sheetstore.NewGoogleStore(bs.Sheets, cfg.SpreadsheetID)
	c := cache.New(time.Now)

	// stores
	astore := store.NewAccountStore(gs, c)
	cstore := store.NewCategoryStore(gs, c)
	tstore := store.NewTransactionStore(gs, c)
	rstore := store.NewRecurringStore(gs, c)

	// services
	lserv := services.NewLedgerService(astore, cstore, tstore)
	rserv := services.NewRecurringService(rstore, lserv)

	ctx := logger.ToContext(context.Background(), bs.Log)
	result, err := rserv.ProcessDue(ctx)
	exitOnError("scheduler pass failed", err, bs.Log)

	bs.Log.Info("scheduler pass complete", "fired", result.Count, "ids", result.FiredIDs)
}
