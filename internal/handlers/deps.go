package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/trungle-dev/sheetbook/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	AccountSvc     AccountService
	CategorySvc    CategoryService
	LedgerSvc      LedgerService
	TransactionSvc TransactionService
	DebtSvc        DebtService
	GoalSvc        GoalService
	RecurringSvc   RecurringService
	TemplateSvc    TemplateService
	BudgetSvc      BudgetService
	ReconcileSvc   ReconcileService
}
