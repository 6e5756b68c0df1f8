package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

type debtStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewDebtStore(st sheetstore.Store, c *cache.Cache) *debtStore {
	return &debtStore{st: st, c: c}
}

func (s *debtStore) List(ctx context.Context) ([]*models.Debt, error) {
	if snap, ok := s.c.Get(cache.Debts); ok {
		return snap.([]*models.Debt), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetDebts)
	if err != nil {
		return nil, err
	}

	debts := make([]*models.Debt, 0, len(rows))
	for _, r := range rows {
		debts = append(debts, &models.Debt{
			ID:        r.Get("id"),
			Name:      r.Get("name"),
			Amount:    parseDecimal(r.Get("amount")),
			Type:      models.DebtType(r.Get("type")),
			Note:      r.Get("note"),
			Status:    models.DebtStatus(r.Get("status")),
			CreatedAt: parseTime(r.Get("created_at")),
			UpdatedAt: parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Debts, debts)
	return debts, nil
}

func (s *debtStore) Get(ctx context.Context, id string) (*models.Debt, error) {
	debts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range debts {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (s *debtStore) Add(ctx context.Context, name string, amount decimal.Decimal, dtype models.DebtType, note string, date time.Time) (*models.Debt, error) {
	debt := &models.Debt{
		ID:        uuid.NewString(),
		Name:      name,
		Amount:    amount,
		Type:      dtype,
		Note:      note,
		Status:    models.DebtPending,
		CreatedAt: date,
		UpdatedAt: time.Now(),
	}

	err := s.st.Append(ctx, sheetstore.SheetDebts, map[string]string{
		"id":         debt.ID,
		"name":       debt.Name,
		"amount":     debt.Amount.String(),
		"type":       string(debt.Type),
		"note":       debt.Note,
		"status":     string(debt.Status),
		"created_at": formatTime(debt.CreatedAt),
		"updated_at": formatTime(debt.UpdatedAt),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Debts)
	return debt, nil
}

func (s *debtStore) UpdateStatus(ctx context.Context, id string, status models.DebtStatus) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetDebts, id)
	if err != nil {
		return err
	}

	row.Set("status", string(status))
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Debts)
	return nil
}

func (s *debtStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetDebts, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Debts)
	return nil
}
