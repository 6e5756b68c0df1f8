package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

// in-memory tabular store
type fakeRow struct {
	cells map[string]string
}

func (r *fakeRow) Get(field string) string { return r.cells[field] }
func (r *fakeRow) Set(field, value string) { r.cells[field] = value }

type fakeStore struct {
	sheets    map[string][]*fakeRow
	rowsCalls map[string]int
	failOp    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sheets:    make(map[string][]*fakeRow),
		rowsCalls: make(map[string]int),
	}
}

func (f *fakeStore) Rows(_ context.Context, sheet string) ([]sheetstore.Row, error) {
	if f.failOp == "rows" {
		return nil, errs.NewStoreError("list rows", "fake failure")
	}
	f.rowsCalls[sheet]++
	rows := make([]sheetstore.Row, 0, len(f.sheets[sheet]))
	for _, r := range f.sheets[sheet] {
		rows = append(rows, r)
	}
	return rows, nil
}

func (f *fakeStore) Append(_ context.Context, sheet string, fields map[string]string) error {
	if f.failOp == "append" {
		return errs.NewStoreError("append row", "fake failure")
	}
	cells := make(map[string]string, len(fields))
	for k, v := range fields {
		cells[k] = v
	}
	f.sheets[sheet] = append(f.sheets[sheet], &fakeRow{cells: cells})
	return nil
}

func (f *fakeStore) Save(_ context.Context, _ sheetstore.Row) error {
	if f.failOp == "save" {
		return errs.NewStoreError("save row", "fake failure")
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, row sheetstore.Row) error {
	for sheet, rows := range f.sheets {
		for i, r := range rows {
			if r == row {
				f.sheets[sheet] = append(rows[:i], rows[i+1:]...)
				return nil
			}
		}
	}
	return errs.NewStoreError("delete row", "row not found")
}

func (f *fakeStore) EnsureSheet(_ context.Context, _ string, _ []string) error { return nil }

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func TestAccountListReadsThroughCache(t *testing.T) {
	fs := newFakeStore()
	fs.sheets[sheetstore.SheetAccounts] = []*fakeRow{
		{cells: map[string]string{"id": "a1", "name": "Wallet", "current_balance": "500"}},
	}
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewAccountStore(fs, cache.New(ck.now))

	for i := 0; i < 3; i++ {
		accounts, err := s.List(context.Background())
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(accounts) != 1 || accounts[0].Name != "Wallet" {
			t.Fatalf("unexpected accounts: %+v", accounts)
		}
	}

	if fs.rowsCalls[sheetstore.SheetAccounts] != 1 {
		t.Fatalf("expected one fetch, got %d", fs.rowsCalls[sheetstore.SheetAccounts])
	}
}

func TestAccountListRefetchesAfterTTL(t *testing.T) {
	fs := newFakeStore()
	fs.sheets[sheetstore.SheetAccounts] = []*fakeRow{
		{cells: map[string]string{"id": "a1", "name": "Wallet", "current_balance": "500"}},
	}
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewAccountStore(fs, cache.New(ck.now))

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	ck.t = ck.t.Add(cache.DefaultTTL)
	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}

	if fs.rowsCalls[sheetstore.SheetAccounts] != 2 {
		t.Fatalf("expected refetch after TTL, got %d fetches", fs.rowsCalls[sheetstore.SheetAccounts])
	}
}

func TestUpdateBalanceInvalidatesCache(t *testing.T) {
	fs := newFakeStore()
	fs.sheets[sheetstore.SheetAccounts] = []*fakeRow{
		{cells: map[string]string{"id": "a1", "name": "Wallet", "current_balance": "500"}},
	}
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewAccountStore(fs, cache.New(ck.now))

	if _, err := s.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if err := s.UpdateBalance(context.Background(), "a1", decimal.NewFromInt(-200)); err != nil {
		t.Fatalf("UpdateBalance error: %v", err)
	}

	accounts, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if !accounts[0].CurrentBalance.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("balance not fresh after mutation: %s", accounts[0].CurrentBalance)
	}
}

func TestTransactionAddInvalidatesFeedAndAccounts(t *testing.T) {
	fs := newFakeStore()
	fs.sheets[sheetstore.SheetAccounts] = []*fakeRow{
		{cells: map[string]string{"id": "a1", "name": "Wallet", "current_balance": "500"}},
	}
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	c := cache.New(ck.now)
	txs := NewTransactionStore(fs, c)
	accounts := NewAccountStore(fs, c)

	if _, err := accounts.List(context.Background()); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := txs.ListRecent(context.Background(), FeedSize); err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}

	tx, err := txs.Add(context.Background(), &models.Transaction{
		Amount:     decimal.NewFromInt(50),
		Date:       ck.t,
		AccountID:  "a1",
		CategoryID: "cat1",
		Type:       models.TxExpense,
		Owner:      models.OwnerPersonal,
	})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if tx.ID == "" {
		t.Fatal("expected generated id")
	}

	if _, ok := c.Get(cache.TxFeed); ok {
		t.Fatal("feed snapshot should be invalidated by Add")
	}
	if _, ok := c.Get(cache.Accounts); ok {
		t.Fatal("accounts snapshot should be invalidated by Add")
	}
}

func TestListRecentSortsAndLimits(t *testing.T) {
	fs := newFakeStore()
	fs.sheets[sheetstore.SheetTxs] = []*fakeRow{
		{cells: map[string]string{"id": "t1", "amount": "10", "date": "2025-01-01T00:00:00Z", "transaction_type": "INCOME", "owner": "PERSONAL"}},
		{cells: map[string]string{"id": "t3", "amount": "30", "date": "2025-03-01T00:00:00Z", "transaction_type": "INCOME", "owner": "PERSONAL"}},
		{cells: map[string]string{"id": "t2", "amount": "20", "date": "2025-02-01T00:00:00Z", "transaction_type": "INCOME", "owner": "PERSONAL"}},
	}
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewTransactionStore(fs, cache.New(ck.now))

	txs, err := s.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("limit not applied: %d rows", len(txs))
	}
	if txs[0].ID != "t3" || txs[1].ID != "t2" {
		t.Fatalf("wrong order: %s, %s", txs[0].ID, txs[1].ID)
	}
}

func TestBudgetSetUpserts(t *testing.T) {
	fs := newFakeStore()
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewBudgetStore(fs, cache.New(ck.now))

	if err := s.Set(context.Background(), "cat1", decimal.NewFromInt(100), "MONTHLY"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set(context.Background(), "cat1", decimal.NewFromInt(250), "MONTHLY"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	if len(fs.sheets[sheetstore.SheetBudgets]) != 1 {
		t.Fatalf("expected a single upserted row, got %d", len(fs.sheets[sheetstore.SheetBudgets]))
	}
	if got := fs.sheets[sheetstore.SheetBudgets][0].Get("amount"); got != "250" {
		t.Fatalf("amount not updated: %s", got)
	}
}

func TestDebtGetMissing(t *testing.T) {
	fs := newFakeStore()
	ck := &testClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewDebtStore(fs, cache.New(ck.now))

	d, err := s.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if d != nil {
		t.Fatalf("expected nil for missing debt, got %+v", d)
	}
}
