package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

// Cell values are untyped strings; parse failures degrade to zero values the
// same way the sheet UI would show them.

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// findRow scans a sheet for the row whose id column matches.
func findRow(ctx context.Context, st sheetstore.Store, sheet, id string) (sheetstore.Row, error) {
	rows, err := st.Rows(ctx, sheet)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.Get("id") == id {
			return r, nil
		}
	}
	return nil, errs.NewNotFoundError(fmt.Sprintf("no row with id %s in sheet %s", id, sheet))
}

// EnsureSchema creates every entity sheet with its frozen header row.
// Idempotent; run once at startup.
func EnsureSchema(ctx context.Context, st sheetstore.Store) error {
	for _, sheet := range []string{
		sheetstore.SheetAccounts,
		sheetstore.SheetCategories,
		sheetstore.SheetTxs,
		sheetstore.SheetDebts,
		sheetstore.SheetTemplates,
		sheetstore.SheetBudgets,
		sheetstore.SheetGoals,
		sheetstore.SheetRecurring,
	} {
		if err := st.EnsureSheet(ctx, sheet, sheetstore.Headers(sheet)); err != nil {
			return err
		}
	}
	return nil
}
