package services

import (
	"context"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
)

type categoryCSStore interface {
	List(ctx context.Context) ([]*models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Add(ctx context.Context, name string, ctype models.CategoryType, owner models.Owner) (*models.Category, error)
	Update(ctx context.Context, id, name string, ctype models.CategoryType, owner models.Owner) error
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories categoryCSStore
}

func NewCategoryService(categories categoryCSStore) *categoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Create(ctx context.Context, name string, ctype models.CategoryType, owner models.Owner) (*models.Category, error) {
	if name == "" {
		return nil, errs.NewValidationError("category name is required")
	}
	if ctype != models.CategoryIncome && ctype != models.CategoryExpense {
		return nil, errs.NewValidationError("category type must be INCOME or EXPENSE")
	}
	return s.categories.Add(ctx, name, ctype, owner)
}

func (s *categoryService) Update(ctx context.Context, id, name string, ctype models.CategoryType, owner models.Owner) error {
	if name == "" {
		return errs.NewValidationError("category name is required")
	}
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errs.NewNotFoundError("category not found")
	}
	return s.categories.Update(ctx, id, name, ctype, owner)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	category, err := s.categories.Get(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return errs.NewNotFoundError("category not found")
	}
	return s.categories.Delete(ctx, id)
}
