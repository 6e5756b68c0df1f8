package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

type recurringStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewRecurringStore(st sheetstore.Store, c *cache.Cache) *recurringStore {
	return &recurringStore{st: st, c: c}
}

func (s *recurringStore) List(ctx context.Context) ([]*models.RecurringTransaction, error) {
	if snap, ok := s.c.Get(cache.Recurring); ok {
		return snap.([]*models.RecurringTransaction), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetRecurring)
	if err != nil {
		return nil, err
	}

	recs := make([]*models.RecurringTransaction, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, &models.RecurringTransaction{
			ID:          r.Get("id"),
			Amount:      parseDecimal(r.Get("amount")),
			Note:        r.Get("note"),
			AccountID:   r.Get("account_id"),
			CategoryID:  r.Get("category_id"),
			Type:        models.TransactionType(r.Get("type")),
			Frequency:   models.Frequency(r.Get("frequency")),
			StartDate:   parseTime(r.Get("start_date")),
			NextRunDate: parseTime(r.Get("next_run_date")),
			Active:      r.Get("active") == "TRUE",
			Owner:       models.Owner(r.Get("owner")),
			CreatedAt:   parseTime(r.Get("created_at")),
			UpdatedAt:   parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Recurring, recs)
	return recs, nil
}

func (s *recurringStore) Add(ctx context.Context, rec *models.RecurringTransaction) (*models.RecurringTransaction, error) {
	now := time.Now()
	rec.ID = uuid.NewString()
	rec.NextRunDate = rec.StartDate // first occurrence is the start date
	rec.Active = true
	rec.CreatedAt = now
	rec.UpdatedAt = now

	active := "FALSE"
	if rec.Active {
		active = "TRUE"
	}

	err := s.st.Append(ctx, sheetstore.SheetRecurring, map[string]string{
		"id":            rec.ID,
		"amount":        rec.Amount.String(),
		"note":          rec.Note,
		"account_id":    rec.AccountID,
		"category_id":   rec.CategoryID,
		"type":          string(rec.Type),
		"frequency":     string(rec.Frequency),
		"start_date":    formatTime(rec.StartDate),
		"next_run_date": formatTime(rec.NextRunDate),
		"active":        active,
		"owner":         string(rec.Owner),
		"created_at":    formatTime(now),
		"updated_at":    formatTime(now),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Recurring)
	return rec, nil
}

// UpdateNextRun persists the advanced schedule after a fire.
func (s *recurringStore) UpdateNextRun(ctx context.Context, id string, next time.Time) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetRecurring, id)
	if err != nil {
		return err
	}

	row.Set("next_run_date", formatTime(next))
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Recurring)
	return nil
}

func (s *recurringStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetRecurring, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Recurring)
	return nil
}
