package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

type budgetStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewBudgetStore(st sheetstore.Store, c *cache.Cache) *budgetStore {
	return &budgetStore{st: st, c: c}
}

func (s *budgetStore) List(ctx context.Context) ([]*models.Budget, error) {
	if snap, ok := s.c.Get(cache.Budgets); ok {
		return snap.([]*models.Budget), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetBudgets)
	if err != nil {
		return nil, err
	}

	budgets := make([]*models.Budget, 0, len(rows))
	for _, r := range rows {
		budgets = append(budgets, &models.Budget{
			CategoryID: r.Get("category_id"),
			Amount:     parseDecimal(r.Get("amount")),
			Period:     r.Get("period"),
			UpdatedAt:  parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Budgets, budgets)
	return budgets, nil
}

// Set upserts the single row keyed by (category, period).
func (s *budgetStore) Set(ctx context.Context, categoryID string, amount decimal.Decimal, period string) error {
	rows, err := s.st.Rows(ctx, sheetstore.SheetBudgets)
	if err != nil {
		return err
	}

	for _, r := range rows {
		if r.Get("category_id") == categoryID && r.Get("period") == period {
			r.Set("amount", amount.String())
			r.Set("updated_at", formatTime(time.Now()))
			if err := s.st.Save(ctx, r); err != nil {
				return err
			}
			s.c.Invalidate(cache.Budgets)
			return nil
		}
	}

	err = s.st.Append(ctx, sheetstore.SheetBudgets, map[string]string{
		"category_id": categoryID,
		"amount":      amount.String(),
		"period":      period,
		"updated_at":  formatTime(time.Now()),
	})
	if err != nil {
		return err
	}

	s.c.Invalidate(cache.Budgets)
	return nil
}
