package services

import (
	"context"
	"testing"
	"time"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/pkg/helpers"
)

type fakeRecorder struct {
	recorded []dto.RecordTransactionParams
	err      error

	// partialOnce simulates one fire where the row is appended but the
	// balance mutation fails afterwards.
	partialOnce bool
}

func (f *fakeRecorder) RecordTransaction(ctx context.Context, p dto.RecordTransactionParams) (*models.Transaction, error) {
	if f.partialOnce {
		f.partialOnce = false
		f.recorded = append(f.recorded, p)
		return nil, errs.NewStoreError("save", "spreadsheet write failed").
			WithStep("transaction recorded, balance not updated")
	}
	if f.err != nil {
		return nil, f.err
	}
	f.recorded = append(f.recorded, p)
	return &models.Transaction{ID: "tx-fired", Amount: p.Amount, Date: p.Date}, nil
}

func TestProcessDueFiresOncePerPass(t *testing.T) {
	start := date(2025, time.January, 15)
	recs := &fakeRecs{recs: []*models.RecurringTransaction{{
		ID:          "rec-1",
		Amount:      d(200000),
		Note:        "tiền điện",
		AccountID:   "acc-1",
		CategoryID:  "cat-bills",
		Type:        models.TxExpense,
		Frequency:   models.FreqMonthly,
		StartDate:   start,
		NextRunDate: start,
		Active:      true,
		Owner:       models.OwnerPersonal,
	}}}
	recorder := &fakeRecorder{}
	svc := NewRecurringService(recs, recorder)
	// Three months overdue: still exactly one fire, catching up one period.
	svc.clockNow = func() time.Time { return start.AddDate(0, 3, 0) }

	result, err := svc.ProcessDue(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}

	if result.Count != 1 || len(result.FiredIDs) != 1 || result.FiredIDs[0] != "rec-1" {
		t.Fatalf("expected exactly one fire for rec-1, got %+v", result)
	}
	if len(recorder.recorded) != 1 {
		t.Fatalf("expected 1 recorded transaction, got %d", len(recorder.recorded))
	}

	fired := recorder.recorded[0]
	if !fired.Date.Equal(start) {
		t.Errorf("fired transaction must carry the scheduled date %s, got %s", start, fired.Date)
	}
	if fired.Note != "[Định kỳ] tiền điện" {
		t.Errorf("unexpected note: %q", fired.Note)
	}
	if fired.Adjustment {
		t.Error("recurring fires must update balances")
	}

	next, ok := recs.nextRuns["rec-1"]
	if !ok {
		t.Fatal("next run date was not advanced")
	}
	if want := start.AddDate(0, 1, 0); !next.Equal(want) {
		t.Errorf("expected next run %s (one period from the previous), got %s", want, next)
	}
}

func TestProcessDueSkipsInactiveAndFuture(t *testing.T) {
	now := date(2025, time.June, 1)
	recs := &fakeRecs{recs: []*models.RecurringTransaction{
		{ID: "rec-inactive", Amount: d(1000), AccountID: "acc-1", CategoryID: "cat-1",
			Type: models.TxExpense, Frequency: models.FreqDaily,
			NextRunDate: now.AddDate(0, 0, -1), Active: false},
		{ID: "rec-future", Amount: d(1000), AccountID: "acc-1", CategoryID: "cat-1",
			Type: models.TxExpense, Frequency: models.FreqDaily,
			NextRunDate: now.AddDate(0, 0, 1), Active: true},
	}}
	recorder := &fakeRecorder{}
	svc := NewRecurringService(recs, recorder)
	svc.clockNow = func() time.Time { return now }

	result, err := svc.ProcessDue(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("expected no fires, got %+v", result)
	}
	if len(recorder.recorded) != 0 {
		t.Errorf("expected no recorded transactions, got %d", len(recorder.recorded))
	}
}

func TestProcessDueDueNowFires(t *testing.T) {
	now := date(2025, time.June, 1)
	recs := &fakeRecs{recs: []*models.RecurringTransaction{{
		ID: "rec-1", Amount: d(1000), AccountID: "acc-1", CategoryID: "cat-1",
		Type: models.TxIncome, Frequency: models.FreqWeekly,
		NextRunDate: now, Active: true,
	}}}
	recorder := &fakeRecorder{}
	svc := NewRecurringService(recs, recorder)
	svc.clockNow = func() time.Time { return now }

	result, err := svc.ProcessDue(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("a record due exactly now must fire, got %+v", result)
	}
	if want := now.AddDate(0, 0, 7); !recs.nextRuns["rec-1"].Equal(want) {
		t.Errorf("expected next run %s, got %s", want, recs.nextRuns["rec-1"])
	}
}

func TestProcessDueFailedFireLeavesScheduleUntouched(t *testing.T) {
	now := date(2025, time.June, 1)
	recs := &fakeRecs{recs: []*models.RecurringTransaction{{
		ID: "rec-1", Amount: d(1000), AccountID: "acc-1", CategoryID: "cat-1",
		Type: models.TxExpense, Frequency: models.FreqMonthly,
		NextRunDate: now.AddDate(0, -1, 0), Active: true,
	}}}
	recorder := &fakeRecorder{err: errs.NewInsufficientFundsError("insufficient balance")}
	svc := NewRecurringService(recs, recorder)
	svc.clockNow = func() time.Time { return now }

	result, err := svc.ProcessDue(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ProcessDue: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("a failed fire must not count, got %+v", result)
	}
	if len(recs.nextRuns) != 0 {
		t.Error("a failed fire must not advance the schedule")
	}
}

func TestProcessDuePartialFireNeverRefires(t *testing.T) {
	due := date(2025, time.January, 15)
	recs := &fakeRecs{recs: []*models.RecurringTransaction{{
		ID: "rec-1", Amount: d(200000), Note: "tiền điện",
		AccountID: "acc-1", CategoryID: "cat-bills",
		Type: models.TxExpense, Frequency: models.FreqMonthly,
		NextRunDate: due, Active: true,
	}}}
	recorder := &fakeRecorder{partialOnce: true}
	svc := NewRecurringService(recs, recorder)
	svc.clockNow = func() time.Time { return due }

	// First pass: the row is appended, then the balance write fails.
	result, err := svc.ProcessDue(helpers.TestCtx())
	se, ok := err.(*errs.StoreError)
	if !ok || se.Step == "" {
		t.Fatalf("expected a step-annotated StoreError, got %v", err)
	}
	if result.Count != 1 || len(result.FiredIDs) != 1 || result.FiredIDs[0] != "rec-1" {
		t.Fatalf("the partial fire must be reported, got %+v", result)
	}
	if want := due.AddDate(0, 1, 0); !recs.nextRuns["rec-1"].Equal(want) {
		t.Errorf("schedule must advance past the appended occurrence, got %s", recs.nextRuns["rec-1"])
	}

	// Second pass: the occurrence must not be appended again.
	result, err = svc.ProcessDue(helpers.TestCtx())
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("second pass must fire nothing, got %+v", result)
	}
	if len(recorder.recorded) != 1 {
		t.Fatalf("occurrence recorded %d times, want exactly once", len(recorder.recorded))
	}
}

func TestCreateRecurringFirstRunIsStartDate(t *testing.T) {
	recs := &fakeRecs{}
	svc := NewRecurringService(recs, &fakeRecorder{})

	start := date(2025, time.August, 1)
	rec, err := svc.Create(helpers.TestCtx(), dto.CreateRecurringParams{
		Amount:     d(5000000),
		Note:       "lương",
		AccountID:  "acc-1",
		CategoryID: "cat-salary",
		Type:       models.TxIncome,
		Frequency:  models.FreqMonthly,
		StartDate:  start,
		Owner:      models.OwnerCompany,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !rec.NextRunDate.Equal(start) {
		t.Errorf("first run must be the start date, got %s", rec.NextRunDate)
	}
	if !rec.Active {
		t.Error("new recurring records start active")
	}
}
