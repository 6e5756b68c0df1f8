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

type templateStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewTemplateStore(st sheetstore.Store, c *cache.Cache) *templateStore {
	return &templateStore{st: st, c: c}
}

func (s *templateStore) List(ctx context.Context) ([]*models.TransactionTemplate, error) {
	if snap, ok := s.c.Get(cache.Templates); ok {
		return snap.([]*models.TransactionTemplate), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetTemplates)
	if err != nil {
		return nil, err
	}

	templates := make([]*models.TransactionTemplate, 0, len(rows))
	for _, r := range rows {
		templates = append(templates, &models.TransactionTemplate{
			ID:         r.Get("id"),
			Name:       r.Get("name"),
			Amount:     parseDecimal(r.Get("amount")),
			CategoryID: r.Get("category_id"),
			Owner:      models.Owner(r.Get("owner")),
			CreatedAt:  parseTime(r.Get("created_at")),
			UpdatedAt:  parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Templates, templates)
	return templates, nil
}

func (s *templateStore) Add(ctx context.Context, name string, amount decimal.Decimal, categoryID string, owner models.Owner) (*models.TransactionTemplate, error) {
	now := time.Now()
	tpl := &models.TransactionTemplate{
		ID:         uuid.NewString(),
		Name:       name,
		Amount:     amount,
		CategoryID: categoryID,
		Owner:      owner,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.st.Append(ctx, sheetstore.SheetTemplates, map[string]string{
		"id":          tpl.ID,
		"name":        tpl.Name,
		"amount":      tpl.Amount.String(),
		"category_id": tpl.CategoryID,
		"owner":       string(tpl.Owner),
		"created_at":  formatTime(now),
		"updated_at":  formatTime(now),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Templates)
	return tpl, nil
}

func (s *templateStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetTemplates, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Templates)
	return nil
}
