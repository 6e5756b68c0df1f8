package sheetstore

import "context"

// Row is a handle to one spreadsheet row. Get returns the cell under the
// named header column, empty if the column is absent. Set stages a cell
// change that only persists on Save.
type Row interface {
	Get(field string) string
	Set(field, value string)
}

// Store is the tabular storage surface the repositories build on. The
// backing spreadsheet offers no query language, no secondary index and no
// cross-row atomicity; every call here is a single network round trip.
type Store interface {
	Rows(ctx context.Context, sheet string) ([]Row, error)
	Append(ctx context.Context, sheet string, fields map[string]string) error
	Save(ctx context.Context, row Row) error
	Delete(ctx context.Context, row Row) error
	EnsureSheet(ctx context.Context, sheet string, headers []string) error
}

// Sheet titles, one per entity.
const (
	SheetAccounts   = "Accounts"
	SheetCategories = "Categories"
	SheetTxs        = "Transactions"
	SheetDebts      = "Debts"
	SheetTemplates  = "TransactionTemplates"
	SheetBudgets    = "Budgets"
	SheetGoals      = "Goals"
	SheetRecurring  = "RecurringTransactions"
)

// Headers returns the frozen column schema for a sheet. These are
// load-bearing: there is no migration facility, so renaming or reordering a
// column breaks Get lookups for every existing row.
func Headers(sheet string) []string {
	switch sheet {
	case SheetAccounts:
		return []string{"id", "name", "current_balance", "created_at", "updated_at"}
	case SheetCategories:
		return []string{"id", "name", "type", "owner_tag", "created_at", "updated_at"}
	case SheetTxs:
		return []string{"id", "amount", "date", "note", "account_id", "category_id", "transaction_type", "owner", "created_at"}
	case SheetDebts:
		return []string{"id", "name", "amount", "type", "note", "status", "created_at", "updated_at"}
	case SheetTemplates:
		return []string{"id", "name", "amount", "category_id", "owner", "created_at", "updated_at"}
	case SheetBudgets:
		return []string{"category_id", "amount", "period", "updated_at"}
	case SheetGoals:
		return []string{"id", "name", "target_amount", "current_amount", "deadline", "icon", "created_at", "updated_at"}
	case SheetRecurring:
		return []string{"id", "amount", "note", "account_id", "category_id", "type", "frequency", "start_date", "next_run_date", "active", "owner", "created_at", "updated_at"}
	}
	return nil
}
