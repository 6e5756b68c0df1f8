package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/trungle-dev/sheetbook/internal/bootstrap"
	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/config"
	"github.com/trungle-dev/sheetbook/internal/handlers"
	"github.com/trungle-dev/sheetbook/internal/response"
	"github.com/trungle-dev/sheetbook/internal/router"
	"github.com/trungle-dev/sheetbook/internal/services"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
	"github.com/trungle-dev/sheetbook/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// storage
	gs := sheetstore.NewGoogleStore(bs.Sheets, cfg.SpreadsheetID)
	err = store.EnsureSchema(context.Background(), gs)
	exitOnError("schema check failed", err, bs.Log)

	c := cache.New(time.Now)

	// stores
	astore := store.NewAccountStore(gs, c)
	cstore := store.NewCategoryStore(gs, c)
	tstore := store.NewTransactionStore(gs, c)
	dstore := store.NewDebtStore(gs, c)
	gstore := store.NewGoalStore(gs, c)
	rstore := store.NewRecurringStore(gs, c)
	plstore := store.NewTemplateStore(gs, c)
	bstore := store.NewBudgetStore(gs, c)

	// services
	aserv := services.NewAccountService(astore)
	cserv := services.NewCategoryService(cstore)
	lserv := services.NewLedgerService(astore, cstore, tstore)
	tserv := services.NewTransactionService(tstore)
	dserv := services.NewDebtService(dstore, astore, tstore)
	gserv := services.NewGoalService(gstore, astore, tstore)
	rserv := services.NewRecurringService(rstore, lserv)
	plserv := services.NewTemplateService(plstore)
	bserv := services.NewBudgetService(bstore, cstore)
	rcserv := services.NewReconcileService(astore, tstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.AccountSvc = aserv
	deps.CategorySvc = cserv
	deps.LedgerSvc = lserv
	deps.TransactionSvc = tserv
	deps.DebtSvc = dserv
	deps.GoalSvc = gserv
	deps.RecurringSvc = rserv
	deps.TemplateSvc = plserv
	deps.BudgetSvc = bserv
	deps.ReconcileSvc = rcserv

	// router
	r := router.NewRouter(deps, cfg.AuthDisabled)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
