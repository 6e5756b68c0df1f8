package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

type balanceChange struct {
	accountID string
	delta     decimal.Decimal
}

type fakeAccounts struct {
	accounts []*models.Account
	changes  []balanceChange
	failNext bool
}

func (f *fakeAccounts) List(ctx context.Context) ([]*models.Account, error) {
	return f.accounts, nil
}

func (f *fakeAccounts) Get(ctx context.Context, id string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	if f.failNext {
		f.failNext = false
		return errs.NewStoreError("save", "spreadsheet write failed")
	}
	f.changes = append(f.changes, balanceChange{accountID: id, delta: delta})
	for _, a := range f.accounts {
		if a.ID == id {
			a.CurrentBalance = a.CurrentBalance.Add(delta)
		}
	}
	return nil
}

type fakeCategories struct {
	categories []*models.Category
}

func (f *fakeCategories) Get(ctx context.Context, id string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

type fakeTxs struct {
	added    []*models.Transaction
	failNext bool
}

func (f *fakeTxs) Add(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if f.failNext {
		f.failNext = false
		return nil, errs.NewStoreError("append", "spreadsheet write failed")
	}
	if tx.ID == "" {
		tx.ID = "tx-" + string(rune('a'+len(f.added)))
	}
	f.added = append(f.added, tx)
	return tx, nil
}

type fakeDebts struct {
	debts         []*models.Debt
	statusUpdates map[string]models.DebtStatus
}

func (f *fakeDebts) List(ctx context.Context) ([]*models.Debt, error) { return f.debts, nil }

func (f *fakeDebts) Get(ctx context.Context, id string) (*models.Debt, error) {
	for _, debt := range f.debts {
		if debt.ID == id {
			return debt, nil
		}
	}
	return nil, nil
}

func (f *fakeDebts) Add(ctx context.Context, name string, amount decimal.Decimal, dtype models.DebtType, note string, dt time.Time) (*models.Debt, error) {
	debt := &models.Debt{
		ID:        "debt-new",
		Name:      name,
		Amount:    amount,
		Type:      dtype,
		Note:      note,
		Status:    models.DebtPending,
		CreatedAt: dt,
	}
	f.debts = append(f.debts, debt)
	return debt, nil
}

func (f *fakeDebts) UpdateStatus(ctx context.Context, id string, status models.DebtStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = map[string]models.DebtStatus{}
	}
	f.statusUpdates[id] = status
	for _, debt := range f.debts {
		if debt.ID == id {
			debt.Status = status
		}
	}
	return nil
}

func (f *fakeDebts) Delete(ctx context.Context, id string) error { return nil }

type fakeGoals struct {
	goals  []*models.Goal
	deltas map[string]decimal.Decimal
}

func (f *fakeGoals) List(ctx context.Context) ([]*models.Goal, error) { return f.goals, nil }

func (f *fakeGoals) Get(ctx context.Context, id string) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGoals) Add(ctx context.Context, name string, target decimal.Decimal, deadline time.Time, icon string) (*models.Goal, error) {
	goal := &models.Goal{ID: "goal-new", Name: name, TargetAmount: target, Deadline: deadline, Icon: icon}
	f.goals = append(f.goals, goal)
	return goal, nil
}

func (f *fakeGoals) AddToCurrent(ctx context.Context, id string, delta decimal.Decimal) error {
	if f.deltas == nil {
		f.deltas = map[string]decimal.Decimal{}
	}
	f.deltas[id] = f.deltas[id].Add(delta)
	for _, g := range f.goals {
		if g.ID == id {
			g.CurrentAmount = g.CurrentAmount.Add(delta)
		}
	}
	return nil
}

func (f *fakeGoals) Delete(ctx context.Context, id string) error { return nil }

type fakeRecs struct {
	recs     []*models.RecurringTransaction
	nextRuns map[string]time.Time
}

func (f *fakeRecs) List(ctx context.Context) ([]*models.RecurringTransaction, error) {
	return f.recs, nil
}

func (f *fakeRecs) Add(ctx context.Context, rec *models.RecurringTransaction) (*models.RecurringTransaction, error) {
	rec.ID = "rec-new"
	rec.NextRunDate = rec.StartDate
	rec.Active = true
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeRecs) UpdateNextRun(ctx context.Context, id string, next time.Time) error {
	if f.nextRuns == nil {
		f.nextRuns = map[string]time.Time{}
	}
	f.nextRuns[id] = next
	for _, rec := range f.recs {
		if rec.ID == id {
			rec.NextRunDate = next
		}
	}
	return nil
}

func (f *fakeRecs) Delete(ctx context.Context, id string) error { return nil }
