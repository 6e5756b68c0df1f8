package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/models"
)

// Tolerance is the absolute gap between real and book totals below which the
// ledger counts as balanced. The comparison is strict: a gap of exactly this
// value is already worth an adjustment. Sub-thousand drift is rounding noise
// in VND.
var Tolerance = decimal.NewFromInt(1000)

type accountListStore interface {
	List(ctx context.Context) ([]*models.Account, error)
}

type transactionHistoryStore interface {
	ListAll(ctx context.Context) ([]*models.Transaction, error)
}

type reconcileService struct {
	accounts accountListStore
	txs      transactionHistoryStore
}

func NewReconcileService(accounts accountListStore, txs transactionHistoryStore) *reconcileService {
	return &reconcileService{accounts: accounts, txs: txs}
}

// Summary fetches current balances and the full transaction history, then
// compares them. History is read uncached so the comparison never mixes a
// fresh balance with a stale feed.
func (s *reconcileService) Summary(ctx context.Context) (dto.ReconciliationSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return dto.ReconciliationSummary{}, err
	}
	txs, err := s.txs.ListAll(ctx)
	if err != nil {
		return dto.ReconciliationSummary{}, err
	}
	return Compute(accounts, txs), nil
}

// Compute replays the book against real balances. Transfer legs are excluded
// from the per-owner flows (they move money between accounts without changing
// the total) but their net contribution to the book is zero either way.
func Compute(accounts []*models.Account, txs []*models.Transaction) dto.ReconciliationSummary {
	realTotal := decimal.Zero
	for _, a := range accounts {
		realTotal = realTotal.Add(a.CurrentBalance)
	}

	bookTotal := decimal.Zero
	personalFlow := decimal.Zero
	companyFlow := decimal.Zero
	for _, tx := range txs {
		bookTotal = bookTotal.Add(tx.Signed())
		if tx.IsTransferLeg() {
			continue
		}
		if tx.Owner == models.OwnerCompany {
			companyFlow = companyFlow.Add(tx.Signed())
		} else {
			personalFlow = personalFlow.Add(tx.Signed())
		}
	}

	diff := realTotal.Sub(bookTotal)
	personalReal, companyReal := AllocateByOwner(realTotal, bookTotal, personalFlow)

	summary := dto.ReconciliationSummary{
		RealTotal:    realTotal,
		BookTotal:    bookTotal,
		Diff:         diff,
		Balanced:     diff.Abs().LessThan(Tolerance),
		IsSurplus:    diff.GreaterThan(decimal.Zero),
		PersonalFlow: personalFlow,
		CompanyFlow:  companyFlow,
		PersonalReal: personalReal,
		CompanyReal:  companyReal,
	}

	if !summary.Balanced {
		proposal := &dto.AdjustmentProposal{Amount: diff.Abs()}
		if summary.IsSurplus {
			proposal.Type = models.TxIncome
		} else {
			proposal.Type = models.TxExpense
		}
		summary.Proposal = proposal
	}
	return summary
}

// AllocateByOwner scales the real total by each owner's share of the book
// flow. A heuristic: it assumes untracked drift distributes proportionally.
// When the book nets to zero there is no ratio to take, so everything is
// attributed to the personal side.
func AllocateByOwner(realTotal, bookTotal, personalFlow decimal.Decimal) (personalReal, companyReal decimal.Decimal) {
	if bookTotal.IsZero() {
		return realTotal, decimal.Zero
	}
	personalReal = realTotal.Mul(personalFlow).Div(bookTotal)
	companyReal = realTotal.Sub(personalReal)
	return personalReal, companyReal
}
