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

type goalStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewGoalStore(st sheetstore.Store, c *cache.Cache) *goalStore {
	return &goalStore{st: st, c: c}
}

func (s *goalStore) List(ctx context.Context) ([]*models.Goal, error) {
	if snap, ok := s.c.Get(cache.Goals); ok {
		return snap.([]*models.Goal), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetGoals)
	if err != nil {
		return nil, err
	}

	goals := make([]*models.Goal, 0, len(rows))
	for _, r := range rows {
		goals = append(goals, &models.Goal{
			ID:            r.Get("id"),
			Name:          r.Get("name"),
			TargetAmount:  parseDecimal(r.Get("target_amount")),
			CurrentAmount: parseDecimal(r.Get("current_amount")),
			Deadline:      parseTime(r.Get("deadline")),
			Icon:          r.Get("icon"),
			CreatedAt:     parseTime(r.Get("created_at")),
			UpdatedAt:     parseTime(r.Get("updated_at")),
		})
	}

	s.c.Put(cache.Goals, goals)
	return goals, nil
}

func (s *goalStore) Get(ctx context.Context, id string) (*models.Goal, error) {
	goals, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (s *goalStore) Add(ctx context.Context, name string, target decimal.Decimal, deadline time.Time, icon string) (*models.Goal, error) {
	now := time.Now()
	goal := &models.Goal{
		ID:           uuid.NewString(),
		Name:         name,
		TargetAmount: target,
		Deadline:     deadline,
		Icon:         icon,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.st.Append(ctx, sheetstore.SheetGoals, map[string]string{
		"id":             goal.ID,
		"name":           goal.Name,
		"target_amount":  goal.TargetAmount.String(),
		"current_amount": "0",
		"deadline":       formatTime(goal.Deadline),
		"icon":           goal.Icon,
		"created_at":     formatTime(now),
		"updated_at":     formatTime(now),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Goals)
	return goal, nil
}

// AddToCurrent increments the saved amount. Contributions only ever add.
func (s *goalStore) AddToCurrent(ctx context.Context, id string, delta decimal.Decimal) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetGoals, id)
	if err != nil {
		return err
	}

	current := parseDecimal(row.Get("current_amount"))
	row.Set("current_amount", current.Add(delta).String())
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Goals)
	return nil
}

func (s *goalStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetGoals, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Goals)
	return nil
}
