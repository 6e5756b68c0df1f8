package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
)

type accountASStore interface {
	List(ctx context.Context) ([]*models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	Add(ctx context.Context, name string, initialBalance decimal.Decimal) (*models.Account, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type accountService struct {
	accounts accountASStore
}

func NewAccountService(accounts accountASStore) *accountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.accounts.List(ctx)
}

func (s *accountService) Create(ctx context.Context, name string, initialBalance decimal.Decimal) (*models.Account, error) {
	if name == "" {
		return nil, errs.NewValidationError("account name is required")
	}
	if initialBalance.LessThan(decimal.Zero) {
		return nil, errs.NewValidationError("initial balance cannot be negative")
	}
	return s.accounts.Add(ctx, name, initialBalance)
}

func (s *accountService) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return errs.NewValidationError("account name is required")
	}
	account, err := s.accounts.Get(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return errs.NewNotFoundError("account not found")
	}
	return s.accounts.Rename(ctx, id, name)
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	account, err := s.accounts.Get(ctx, id)
	if err != nil {
		return err
	}
	if account == nil {
		return errs.NewNotFoundError("account not found")
	}
	return s.accounts.Delete(ctx, id)
}
