package dto

import (
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/models"
)

// ReconciliationSummary compares real money (account balances) against the
// book (replayed transaction history).
type ReconciliationSummary struct {
	RealTotal decimal.Decimal `json:"realTotal"`
	BookTotal decimal.Decimal `json:"bookTotal"`
	Diff      decimal.Decimal `json:"diff"`
	Balanced  bool            `json:"balanced"`
	IsSurplus bool            `json:"isSurplus"`

	PersonalFlow decimal.Decimal `json:"personalFlow"`
	CompanyFlow  decimal.Decimal `json:"companyFlow"`

	// Ratio-scaled attribution of RealTotal per owner. This is a heuristic,
	// not an exact attribution; see AllocateByOwner.
	PersonalReal decimal.Decimal `json:"personalReal"`
	CompanyReal  decimal.Decimal `json:"companyReal"`

	Proposal *AdjustmentProposal `json:"proposal,omitempty"`
}

// AdjustmentProposal is the transaction that, recorded with the adjustment
// flag, would bring the book in line with reality.
type AdjustmentProposal struct {
	Type   models.TransactionType `json:"type"`
	Amount decimal.Decimal        `json:"amount"`
}
