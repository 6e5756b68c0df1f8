package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

type accountLSStore interface {
	Get(ctx context.Context, id string) (*models.Account, error)
	UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error
}

type categoryLSStore interface {
	Get(ctx context.Context, id string) (*models.Category, error)
}

type transactionLSStore interface {
	Add(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
}

// ledgerService owns every write to account balances. Each operation is a
// fixed sequence of single-row round trips with no cross-row atomicity; a
// store failure mid-sequence leaves a partial application that only the
// reconciliation pass can surface, so errors carry the step reached.
type ledgerService struct {
	accounts   accountLSStore
	categories categoryLSStore
	txs        transactionLSStore
}

func NewLedgerService(accounts accountLSStore, categories categoryLSStore, txs transactionLSStore) *ledgerService {
	return &ledgerService{
		accounts:   accounts,
		categories: categories,
		txs:        txs,
	}
}

// reservedCategory reports whether id is one of the synthesized markers that
// never resolve to a Categories row.
func reservedCategory(id string) bool {
	switch id {
	case models.CategoryTransferOut, models.CategoryTransferIn, models.CategorySavings:
		return true
	}
	return false
}

// RecordTransaction validates, appends the immutable transaction row, then
// applies the balance mutation unless the adjustment flag is set.
func (s *ledgerService) RecordTransaction(ctx context.Context, p dto.RecordTransactionParams) (*models.Transaction, error) {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if p.AccountID == "" {
		return nil, errs.NewValidationError("account is required")
	}
	if p.Date.IsZero() {
		return nil, errs.NewValidationError("date is required")
	}
	if p.Type != models.TxIncome && p.Type != models.TxExpense {
		return nil, errs.NewValidationError("transaction type must be INCOME or EXPENSE")
	}
	if p.CategoryID == "" {
		return nil, errs.NewValidationError("category is required")
	}

	account, err := s.accounts.Get(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errs.NewNotFoundError("account not found")
	}

	if !reservedCategory(p.CategoryID) {
		category, err := s.categories.Get(ctx, p.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, errs.NewNotFoundError("category not found")
		}
	}

	// Best-effort funds check against the current (possibly cached) balance.
	// A concurrent writer can still overdraw; the store offers no lock to
	// close that race.
	if p.Type == models.TxExpense && account.CurrentBalance.LessThan(p.Amount) {
		return nil, errs.NewInsufficientFundsError("insufficient balance for this transaction")
	}

	tx, err := s.txs.Add(ctx, &models.Transaction{
		Amount:     p.Amount,
		Date:       p.Date,
		Note:       p.Note,
		AccountID:  p.AccountID,
		CategoryID: p.CategoryID,
		Type:       p.Type,
		Owner:      p.Owner,
	})
	if err != nil {
		return nil, err
	}

	if !p.Adjustment {
		delta := p.Amount
		if p.Type == models.TxExpense {
			delta = p.Amount.Neg()
		}
		if err := s.accounts.UpdateBalance(ctx, p.AccountID, delta); err != nil {
			return nil, stepErr(err, "transaction recorded, balance not updated")
		}
	}

	log := logger.FromContext(ctx)
	log.Info("transaction recorded",
		"transaction_id", tx.ID,
		"type", p.Type,
		"amount", p.Amount.String(),
		"adjustment", p.Adjustment)
	return tx, nil
}

// Transfer synthesizes a logical transfer as two linked rows: an expense leg
// on the source then an income leg on the destination, each with its own
// balance mutation. The fixed order (debit before credit) bounds which
// partial states are reachable when a step fails.
func (s *ledgerService) Transfer(ctx context.Context, p dto.TransferParams) (dto.TransferResult, error) {
	result := dto.TransferResult{}

	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return result, errs.NewValidationError("amount must be positive")
	}
	if p.SourceID == "" || p.Date.IsZero() {
		return result, errs.NewValidationError("missing required fields (amount, account, date)")
	}
	if p.DestinationID == "" {
		return result, errs.NewValidationError("missing destination account")
	}
	if p.SourceID == p.DestinationID {
		return result, errs.NewValidationError("cannot transfer to the same account")
	}

	source, err := s.accounts.Get(ctx, p.SourceID)
	if err != nil {
		return result, err
	}
	if source == nil {
		return result, errs.NewNotFoundError("source account not found")
	}
	dest, err := s.accounts.Get(ctx, p.DestinationID)
	if err != nil {
		return result, err
	}
	if dest == nil {
		return result, errs.NewNotFoundError("destination account not found")
	}
	if source.CurrentBalance.LessThan(p.Amount) {
		return result, errs.NewInsufficientFundsError("insufficient balance for this transfer")
	}

	out, err := s.txs.Add(ctx, &models.Transaction{
		Amount:     p.Amount,
		Date:       p.Date,
		Note:       fmt.Sprintf("Chuyển tiền đến %s: %s", dest.Name, p.Note),
		AccountID:  p.SourceID,
		CategoryID: models.CategoryTransferOut,
		Type:       models.TxExpense,
		Owner:      models.OwnerPersonal, // internal transfers stay personal
	})
	if err != nil {
		return result, err
	}
	result.OutTransactionID = out.ID

	if !p.Adjustment {
		if err := s.accounts.UpdateBalance(ctx, p.SourceID, p.Amount.Neg()); err != nil {
			return result, stepErr(err, "transfer-out leg recorded, source not debited")
		}
	}

	in, err := s.txs.Add(ctx, &models.Transaction{
		Amount:     p.Amount,
		Date:       p.Date,
		Note:       fmt.Sprintf("Nhận tiền từ %s: %s", source.Name, p.Note),
		AccountID:  p.DestinationID,
		CategoryID: models.CategoryTransferIn,
		Type:       models.TxIncome,
		Owner:      models.OwnerPersonal,
	})
	if err != nil {
		return result, stepErr(err, "source debited, transfer-in leg not recorded")
	}
	result.InTransactionID = in.ID

	if !p.Adjustment {
		if err := s.accounts.UpdateBalance(ctx, p.DestinationID, p.Amount); err != nil {
			return result, stepErr(err, "transfer-in leg recorded, destination not credited")
		}
	}

	log := logger.FromContext(ctx)
	log.Info("transfer recorded",
		"out_transaction_id", out.ID,
		"in_transaction_id", in.ID,
		"amount", p.Amount.String())
	return result, nil
}

// stepErr annotates store failures with how far the sequence got. Other
// error kinds pass through untouched.
func stepErr(err error, step string) error {
	if se, ok := err.(*errs.StoreError); ok {
		return se.WithStep(step)
	}
	return err
}
