package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

const defaultGoalIcon = "🎯"

type goalGSStore interface {
	List(ctx context.Context) ([]*models.Goal, error)
	Get(ctx context.Context, id string) (*models.Goal, error)
	Add(ctx context.Context, name string, target decimal.Decimal, deadline time.Time, icon string) (*models.Goal, error)
	AddToCurrent(ctx context.Context, id string, delta decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type goalService struct {
	goals    goalGSStore
	accounts accountLSStore
	txs      transactionLSStore
	clockNow func() time.Time
}

func NewGoalService(goals goalGSStore, accounts accountLSStore, txs transactionLSStore) *goalService {
	return &goalService{
		goals:    goals,
		accounts: accounts,
		txs:      txs,
		clockNow: time.Now,
	}
}

func (s *goalService) List(ctx context.Context) ([]*models.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) Create(ctx context.Context, p dto.CreateGoalParams) (*models.Goal, error) {
	if p.Name == "" {
		return nil, errs.NewValidationError("goal name is required")
	}
	if p.Target.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("target amount must be positive")
	}

	icon := p.Icon
	if icon == "" {
		icon = defaultGoalIcon
	}
	return s.goals.Add(ctx, p.Name, p.Target, p.Deadline, icon)
}

// Contribute moves money from an account into a goal: an expense row under
// the savings marker category, the account debit, then the goal counter
// increment. CurrentAmount never decreases through this path.
func (s *goalService) Contribute(ctx context.Context, p dto.ContributeParams) (*models.Transaction, error) {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if p.AccountID == "" {
		return nil, errs.NewValidationError("account is required")
	}

	goal, err := s.goals.Get(ctx, p.GoalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errs.NewNotFoundError("goal not found")
	}

	account, err := s.accounts.Get(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errs.NewNotFoundError("account not found")
	}

	date := p.Date
	if date.IsZero() {
		date = s.clockNow()
	}

	tx, err := s.txs.Add(ctx, &models.Transaction{
		Amount:     p.Amount,
		Date:       date,
		Note:       fmt.Sprintf("Tích lũy cho mục tiêu: %s", goal.Name),
		AccountID:  p.AccountID,
		CategoryID: models.CategorySavings,
		Type:       models.TxExpense,
		Owner:      models.OwnerPersonal,
	})
	if err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateBalance(ctx, p.AccountID, p.Amount.Neg()); err != nil {
		return nil, stepErr(err, "contribution recorded, account not debited")
	}

	if err := s.goals.AddToCurrent(ctx, p.GoalID, p.Amount); err != nil {
		return nil, stepErr(err, "account debited, goal progress not updated")
	}

	log := logger.FromContext(ctx)
	log.Info("goal contribution recorded",
		"goal_id", goal.ID,
		"transaction_id", tx.ID,
		"amount", p.Amount.String())
	return tx, nil
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	goal, err := s.goals.Get(ctx, id)
	if err != nil {
		return err
	}
	if goal == nil {
		return errs.NewNotFoundError("goal not found")
	}
	return s.goals.Delete(ctx, id)
}
