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

type debtDSStore interface {
	List(ctx context.Context) ([]*models.Debt, error)
	Get(ctx context.Context, id string) (*models.Debt, error)
	Add(ctx context.Context, name string, amount decimal.Decimal, dtype models.DebtType, note string, date time.Time) (*models.Debt, error)
	UpdateStatus(ctx context.Context, id string, status models.DebtStatus) error
	Delete(ctx context.Context, id string) error
}

type debtService struct {
	debts    debtDSStore
	accounts accountLSStore
	txs      transactionLSStore
	clockNow func() time.Time
}

func NewDebtService(debts debtDSStore, accounts accountLSStore, txs transactionLSStore) *debtService {
	return &debtService{
		debts:    debts,
		accounts: accounts,
		txs:      txs,
		clockNow: time.Now,
	}
}

func (s *debtService) List(ctx context.Context) ([]*models.Debt, error) {
	return s.debts.List(ctx)
}

func (s *debtService) Create(ctx context.Context, p dto.CreateDebtParams) (*models.Debt, error) {
	if p.Name == "" {
		return nil, errs.NewValidationError("debt name is required")
	}
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if p.Type != models.DebtReceivable && p.Type != models.DebtPayable {
		return nil, errs.NewValidationError("debt type must be RECEIVABLE or PAYABLE")
	}

	date := p.Date
	if date.IsZero() {
		date = s.clockNow()
	}
	return s.debts.Add(ctx, p.Name, p.Amount, p.Type, p.Note, date)
}

// Settle closes a pending debt by materializing the cash movement: a
// settlement transaction, the balance mutation, then the status flip. The
// status flip comes last so a failed write leaves the debt retriable rather
// than silently closed without money moving.
//
// No funds check here: paying a debt the account cannot cover is the
// caller's problem to surface, not a reason to block the record.
func (s *debtService) Settle(ctx context.Context, p dto.SettleDebtParams) (*models.Transaction, error) {
	if p.AccountID == "" {
		return nil, errs.NewValidationError("account is required")
	}
	if p.CategoryID == "" {
		return nil, errs.NewValidationError("category is required")
	}

	debt, err := s.debts.Get(ctx, p.DebtID)
	if err != nil {
		return nil, err
	}
	if debt == nil {
		return nil, errs.NewNotFoundError("debt not found")
	}
	if debt.Status == models.DebtPaid {
		return nil, errs.NewValidationError("debt is already settled")
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
		Amount:     debt.Amount,
		Date:       date,
		Note:       fmt.Sprintf("Hoàn tất khoản nợ: %s", debt.Name),
		AccountID:  p.AccountID,
		CategoryID: p.CategoryID,
		Type:       debt.SettlementType(),
		Owner:      models.OwnerPersonal,
	})
	if err != nil {
		return nil, err
	}

	delta := debt.Amount
	if debt.SettlementType() == models.TxExpense {
		delta = debt.Amount.Neg()
	}
	if err := s.accounts.UpdateBalance(ctx, p.AccountID, delta); err != nil {
		return nil, stepErr(err, "settlement recorded, balance not updated")
	}

	if err := s.debts.UpdateStatus(ctx, p.DebtID, models.DebtPaid); err != nil {
		return nil, stepErr(err, "settlement applied, debt still marked pending")
	}

	log := logger.FromContext(ctx)
	log.Info("debt settled",
		"debt_id", debt.ID,
		"transaction_id", tx.ID,
		"amount", debt.Amount.String())
	return tx, nil
}

// Revert flips a settled debt back to pending. It touches the status only;
// the settlement transaction and balance mutation stay on the books, to be
// corrected with an offsetting entry if that is what the user wants.
func (s *debtService) Revert(ctx context.Context, id string) error {
	debt, err := s.debts.Get(ctx, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return errs.NewNotFoundError("debt not found")
	}
	if debt.Status != models.DebtPaid {
		return errs.NewValidationError("debt is not settled")
	}
	return s.debts.UpdateStatus(ctx, id, models.DebtPending)
}

func (s *debtService) Delete(ctx context.Context, id string) error {
	debt, err := s.debts.Get(ctx, id)
	if err != nil {
		return err
	}
	if debt == nil {
		return errs.NewNotFoundError("debt not found")
	}
	return s.debts.Delete(ctx, id)
}
