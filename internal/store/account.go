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

type accountStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewAccountStore(st sheetstore.Store, c *cache.Cache) *accountStore {
	return &accountStore{st: st, c: c}
}

func (s *accountStore) List(ctx context.Context) ([]*models.Account, error) {
	if snap, ok := s.c.Get(cache.Accounts); ok {
		return snap.([]*models.Account), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetAccounts)
	if err != nil {
		return nil, err
	}

	accounts := make([]*models.Account, 0, len(rows))
	for _, r := range rows {
		accounts = append(accounts, &models.Account{
			ID:             r.Get("id"),
			Name:           r.Get("name"),
			CurrentBalance: parseDecimal(r.Get("current_balance")),
			CreatedAt:      parseTime(r.Get("created_at")),
			UpdatedAt:      parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Accounts, accounts)
	return accounts, nil
}

func (s *accountStore) Get(ctx context.Context, id string) (*models.Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *accountStore) Add(ctx context.Context, name string, initialBalance decimal.Decimal) (*models.Account, error) {
	now := time.Now()
	account := &models.Account{
		ID:             uuid.NewString(),
		Name:           name,
		CurrentBalance: initialBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.st.Append(ctx, sheetstore.SheetAccounts, map[string]string{
		"id":              account.ID,
		"name":            account.Name,
		"current_balance": account.CurrentBalance.String(),
		"created_at":      formatTime(account.CreatedAt),
		"updated_at":      formatTime(account.UpdatedAt),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Accounts)
	return account, nil
}

// UpdateBalance applies a signed delta to the stored balance. The read-
// modify-write is not guarded; last write wins, as everywhere on this store.
func (s *accountStore) UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetAccounts, id)
	if err != nil {
		return err
	}

	current := parseDecimal(row.Get("current_balance"))
	row.Set("current_balance", current.Add(delta).String())
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Accounts)
	return nil
}

func (s *accountStore) Rename(ctx context.Context, id, name string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetAccounts, id)
	if err != nil {
		return err
	}

	row.Set("name", name)
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Accounts)
	return nil
}

func (s *accountStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetAccounts, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Accounts)
	return nil
}
