package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/trungle-dev/sheetbook/internal/handlers"
	"github.com/trungle-dev/sheetbook/internal/middleware"
)

func NewRouter(deps *handlers.Deps, authDisabled bool) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	if !authDisabled {
		am := middleware.NewMiddleware(deps.Firebase)
		r.Use(am.FirebaseAuth)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	txh := handlers.NewTransactionHandlers(deps)
	ach := handlers.NewAccountHandlers(deps)
	cah := handlers.NewCategoryHandlers(deps)
	deh := handlers.NewDebtHandlers(deps)
	goh := handlers.NewGoalHandlers(deps)
	reh := handlers.NewRecurringHandlers(deps)
	teh := handlers.NewTemplateHandlers(deps)
	buh := handlers.NewBudgetHandlers(deps)
	rch := handlers.NewReconciliationHandlers(deps)

	r.Mount("/transactions", txh.TransactionRoutes())
	r.Mount("/accounts", ach.AccountRoutes())
	r.Mount("/categories", cah.CategoryRoutes())
	r.Mount("/debts", deh.DebtRoutes())
	r.Mount("/goals", goh.GoalRoutes())
	r.Mount("/recurring", reh.RecurringRoutes())
	r.Mount("/templates", teh.TemplateRoutes())
	r.Mount("/budgets", buh.BudgetRoutes())
	r.Mount("/reconciliation", rch.ReconciliationRoutes())
	return r
}
