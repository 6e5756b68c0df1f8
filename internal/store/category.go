package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

type categoryStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewCategoryStore(st sheetstore.Store, c *cache.Cache) *categoryStore {
	return &categoryStore{st: st, c: c}
}

func (s *categoryStore) List(ctx context.Context) ([]*models.Category, error) {
	if snap, ok := s.c.Get(cache.Categories); ok {
		return snap.([]*models.Category), nil
	}

	rows, err := s.st.Rows(ctx, sheetstore.SheetCategories)
	if err != nil {
		return nil, err
	}

	categories := make([]*models.Category, 0, len(rows))
	for _, r := range rows {
		categories = append(categories, &models.Category{
			ID:        r.Get("id"),
			Name:      r.Get("name"),
			Type:      models.CategoryType(r.Get("type")),
			OwnerTag:  models.Owner(r.Get("owner_tag")),
			CreatedAt: parseTime(r.Get("created_at")),
		})
	}

	s.c.Put(cache.Categories, categories)
	return categories, nil
}

func (s *categoryStore) Get(ctx context.Context, id string) (*models.Category, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *categoryStore) Add(ctx context.Context, name string, ctype models.CategoryType, owner models.Owner) (*models.Category, error) {
	now := time.Now()
	category := &models.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      ctype,
		OwnerTag:  owner,
		CreatedAt: now,
	}

	err := s.st.Append(ctx, sheetstore.SheetCategories, map[string]string{
		"id":         category.ID,
		"name":       category.Name,
		"type":       string(category.Type),
		"owner_tag":  string(category.OwnerTag),
		"created_at": formatTime(now),
		"updated_at": formatTime(now),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.Categories)
	return category, nil
}

// Update performs the cosmetic edits an administrator is allowed: name, type
// and owner tag. Referencing transactions keep pointing at the same id.
func (s *categoryStore) Update(ctx context.Context, id, name string, ctype models.CategoryType, owner models.Owner) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetCategories, id)
	if err != nil {
		return err
	}

	row.Set("name", name)
	row.Set("type", string(ctype))
	row.Set("owner_tag", string(owner))
	row.Set("updated_at", formatTime(time.Now()))
	if err := s.st.Save(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Categories)
	return nil
}

func (s *categoryStore) Delete(ctx context.Context, id string) error {
	row, err := findRow(ctx, s.st, sheetstore.SheetCategories, id)
	if err != nil {
		return err
	}
	if err := s.st.Delete(ctx, row); err != nil {
		return err
	}

	s.c.Invalidate(cache.Categories)
	return nil
}
