package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
)

type budgetBSStore interface {
	List(ctx context.Context) ([]*models.Budget, error)
	Set(ctx context.Context, categoryID string, amount decimal.Decimal, period string) error
}

type budgetService struct {
	budgets    budgetBSStore
	categories categoryLSStore
}

func NewBudgetService(budgets budgetBSStore, categories categoryLSStore) *budgetService {
	return &budgetService{budgets: budgets, categories: categories}
}

func (s *budgetService) List(ctx context.Context) ([]*models.Budget, error) {
	return s.budgets.List(ctx)
}

// Set upserts the budget line for a category and period. A zero amount is
// allowed; it clears the cap without removing the row.
func (s *budgetService) Set(ctx context.Context, categoryID string, amount decimal.Decimal, period string) error {
	if categoryID == "" {
		return errs.NewValidationError("category is required")
	}
	if amount.LessThan(decimal.Zero) {
		return errs.NewValidationError("budget amount cannot be negative")
	}
	if period == "" {
		period = models.PeriodMonthly
	}

	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return errs.NewNotFoundError("category not found")
	}
	return s.budgets.Set(ctx, categoryID, amount, period)
}
