package services

import (
	"strings"
	"testing"
	"time"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/pkg/helpers"
)

func TestRecordTransactionExpenseDebitsAccount(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-1", Name: "Cash", CurrentBalance: d(500000)},
	}}
	categories := &fakeCategories{categories: []*models.Category{
		{ID: "cat-food", Name: "Food", Type: models.CategoryExpense},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, categories, txs)

	tx, err := svc.RecordTransaction(helpers.TestCtx(), dto.RecordTransactionParams{
		Amount:     d(120000),
		Date:       date(2025, time.March, 10),
		Note:       "lunch",
		AccountID:  "acc-1",
		CategoryID: "cat-food",
		Type:       models.TxExpense,
		Owner:      models.OwnerPersonal,
	})
	if err != nil {
		t.Fatalf("RecordTransaction: %v", err)
	}
	if tx.ID == "" {
		t.Error("expected transaction id to be assigned")
	}
	if len(txs.added) != 1 {
		t.Fatalf("expected 1 transaction row, got %d", len(txs.added))
	}
	if len(accounts.changes) != 1 {
		t.Fatalf("expected 1 balance change, got %d", len(accounts.changes))
	}
	if got := accounts.changes[0].delta; !got.Equal(d(-120000)) {
		t.Errorf("expected delta -120000, got %s", got)
	}
	if got := accounts.accounts[0].CurrentBalance; !got.Equal(d(380000)) {
		t.Errorf("expected balance 380000, got %s", got)
	}
}

func TestRecordTransactionAdjustmentSkipsBalance(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-1", Name: "Cash", CurrentBalance: d(500000)},
	}}
	categories := &fakeCategories{categories: []*models.Category{
		{ID: "cat-misc", Name: "Misc", Type: models.CategoryExpense},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, categories, txs)

	_, err := svc.RecordTransaction(helpers.TestCtx(), dto.RecordTransactionParams{
		Amount:     d(50000),
		Date:       date(2025, time.March, 10),
		AccountID:  "acc-1",
		CategoryID: "cat-misc",
		Type:       models.TxExpense,
		Adjustment: true,
	})
	if err != nil {
		t.Fatalf("RecordTransaction: %v", err)
	}
	if len(txs.added) != 1 {
		t.Fatalf("expected 1 transaction row, got %d", len(txs.added))
	}
	if len(accounts.changes) != 0 {
		t.Errorf("adjustment must not touch the balance, got %d changes", len(accounts.changes))
	}
}

func TestRecordTransactionInsufficientFunds(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-1", Name: "Cash", CurrentBalance: d(1000)},
	}}
	categories := &fakeCategories{categories: []*models.Category{
		{ID: "cat-misc", Name: "Misc", Type: models.CategoryExpense},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, categories, txs)

	_, err := svc.RecordTransaction(helpers.TestCtx(), dto.RecordTransactionParams{
		Amount:     d(5000),
		Date:       date(2025, time.March, 10),
		AccountID:  "acc-1",
		CategoryID: "cat-misc",
		Type:       models.TxExpense,
	})
	if _, ok := err.(*errs.InsufficientFundsError); !ok {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if len(txs.added) != 0 {
		t.Errorf("rejected transaction must not write any row, got %d", len(txs.added))
	}
	if len(accounts.changes) != 0 {
		t.Errorf("rejected transaction must not change balances, got %d", len(accounts.changes))
	}
}

func TestRecordTransactionReservedCategorySkipsLookup(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-1", Name: "Cash", CurrentBalance: d(500000)},
	}}
	txs := &fakeTxs{}
	// no categories registered: a reserved marker must not be looked up
	svc := NewLedgerService(accounts, &fakeCategories{}, txs)

	_, err := svc.RecordTransaction(helpers.TestCtx(), dto.RecordTransactionParams{
		Amount:     d(10000),
		Date:       date(2025, time.March, 10),
		AccountID:  "acc-1",
		CategoryID: models.CategorySavings,
		Type:       models.TxExpense,
	})
	if err != nil {
		t.Fatalf("RecordTransaction with reserved category: %v", err)
	}
}

func TestRecordTransactionBalanceFailureReportsStep(t *testing.T) {
	accounts := &fakeAccounts{
		accounts: []*models.Account{{ID: "acc-1", Name: "Cash", CurrentBalance: d(500000)}},
		failNext: true,
	}
	categories := &fakeCategories{categories: []*models.Category{
		{ID: "cat-misc", Name: "Misc", Type: models.CategoryExpense},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, categories, txs)

	_, err := svc.RecordTransaction(helpers.TestCtx(), dto.RecordTransactionParams{
		Amount:     d(10000),
		Date:       date(2025, time.March, 10),
		AccountID:  "acc-1",
		CategoryID: "cat-misc",
		Type:       models.TxExpense,
	})
	se, ok := err.(*errs.StoreError)
	if !ok {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if se.Step != "transaction recorded, balance not updated" {
		t.Errorf("unexpected step: %q", se.Step)
	}
	if len(txs.added) != 1 {
		t.Errorf("the transaction row was written before the failure, expected it kept")
	}
}

func TestTransferProducesTwoOffsettingLegs(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-src", Name: "Vietcombank", CurrentBalance: d(2000000)},
		{ID: "acc-dst", Name: "Cash", CurrentBalance: d(100000)},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, &fakeCategories{}, txs)

	result, err := svc.Transfer(helpers.TestCtx(), dto.TransferParams{
		Amount:        d(500000),
		Date:          date(2025, time.April, 1),
		Note:          "rút tiền mặt",
		SourceID:      "acc-src",
		DestinationID: "acc-dst",
	})
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if len(txs.added) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(txs.added))
	}
	out, in := txs.added[0], txs.added[1]
	if result.OutTransactionID != out.ID || result.InTransactionID != in.ID {
		t.Error("result ids do not match the recorded legs")
	}

	if out.CategoryID != models.CategoryTransferOut || out.Type != models.TxExpense {
		t.Errorf("bad out leg: category=%s type=%s", out.CategoryID, out.Type)
	}
	if in.CategoryID != models.CategoryTransferIn || in.Type != models.TxIncome {
		t.Errorf("bad in leg: category=%s type=%s", in.CategoryID, in.Type)
	}
	if !out.Amount.Equal(in.Amount) {
		t.Errorf("legs must carry the same amount: %s vs %s", out.Amount, in.Amount)
	}
	if !strings.Contains(out.Note, "Chuyển tiền đến Cash") {
		t.Errorf("unexpected out note: %q", out.Note)
	}
	if !strings.Contains(in.Note, "Nhận tiền từ Vietcombank") {
		t.Errorf("unexpected in note: %q", in.Note)
	}
	if out.Owner != models.OwnerPersonal || in.Owner != models.OwnerPersonal {
		t.Error("transfer legs must stay personal")
	}

	// Conservation: the two balance deltas cancel.
	if len(accounts.changes) != 2 {
		t.Fatalf("expected 2 balance changes, got %d", len(accounts.changes))
	}
	if got := accounts.changes[0].delta.Add(accounts.changes[1].delta); !got.IsZero() {
		t.Errorf("transfer must net to zero, got %s", got)
	}
	if got := accounts.accounts[0].CurrentBalance; !got.Equal(d(1500000)) {
		t.Errorf("source balance: expected 1500000, got %s", got)
	}
	if got := accounts.accounts[1].CurrentBalance; !got.Equal(d(600000)) {
		t.Errorf("destination balance: expected 600000, got %s", got)
	}
}

func TestTransferRejectsSameAccount(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-1", Name: "Cash", CurrentBalance: d(2000000)},
	}}
	svc := NewLedgerService(accounts, &fakeCategories{}, &fakeTxs{})

	_, err := svc.Transfer(helpers.TestCtx(), dto.TransferParams{
		Amount:        d(1000),
		Date:          date(2025, time.April, 1),
		SourceID:      "acc-1",
		DestinationID: "acc-1",
	})
	if _, ok := err.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTransferInsufficientSourceBalance(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-src", Name: "Cash", CurrentBalance: d(100)},
		{ID: "acc-dst", Name: "Bank", CurrentBalance: d(0)},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, &fakeCategories{}, txs)

	_, err := svc.Transfer(helpers.TestCtx(), dto.TransferParams{
		Amount:        d(500000),
		Date:          date(2025, time.April, 1),
		SourceID:      "acc-src",
		DestinationID: "acc-dst",
	})
	if _, ok := err.(*errs.InsufficientFundsError); !ok {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}
	if len(txs.added) != 0 || len(accounts.changes) != 0 {
		t.Error("rejected transfer must leave no trace")
	}
}

func TestTransferAdjustmentRecordsLegsOnly(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*models.Account{
		{ID: "acc-src", Name: "Cash", CurrentBalance: d(2000000)},
		{ID: "acc-dst", Name: "Bank", CurrentBalance: d(0)},
	}}
	txs := &fakeTxs{}
	svc := NewLedgerService(accounts, &fakeCategories{}, txs)

	_, err := svc.Transfer(helpers.TestCtx(), dto.TransferParams{
		Amount:        d(500000),
		Date:          date(2025, time.April, 1),
		SourceID:      "acc-src",
		DestinationID: "acc-dst",
		Adjustment:    true,
	})
	if err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if len(txs.added) != 2 {
		t.Fatalf("expected 2 legs, got %d", len(txs.added))
	}
	if len(accounts.changes) != 0 {
		t.Errorf("adjustment transfer must not move balances, got %d changes", len(accounts.changes))
	}
}
