package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
)

type templateTSStore interface {
	List(ctx context.Context) ([]*models.TransactionTemplate, error)
	Add(ctx context.Context, name string, amount decimal.Decimal, categoryID string, owner models.Owner) (*models.TransactionTemplate, error)
	Delete(ctx context.Context, id string) error
}

type templateService struct {
	templates templateTSStore
}

func NewTemplateService(templates templateTSStore) *templateService {
	return &templateService{templates: templates}
}

func (s *templateService) List(ctx context.Context) ([]*models.TransactionTemplate, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Create(ctx context.Context, name string, amount decimal.Decimal, categoryID string, owner models.Owner) (*models.TransactionTemplate, error) {
	if name == "" {
		return nil, errs.NewValidationError("template name is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if categoryID == "" {
		return nil, errs.NewValidationError("category is required")
	}
	return s.templates.Add(ctx, name, amount, categoryID, owner)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return err
	}
	for _, tpl := range templates {
		if tpl.ID == id {
			return s.templates.Delete(ctx, id)
		}
	}
	return errs.NewNotFoundError("template not found")
}
