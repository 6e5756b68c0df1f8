package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DebtType string

const (
	DebtReceivable DebtType = "RECEIVABLE"
	DebtPayable    DebtType = "PAYABLE"
)

type DebtStatus string

const (
	DebtPending DebtStatus = "PENDING"
	DebtPaid    DebtStatus = "PAID"
)

type Debt struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Type      DebtType        `json:"type"`
	Note      string          `json:"note"`
	Status    DebtStatus      `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SettlementType derives the transaction type a settlement produces:
// collecting a receivable is income, paying a payable is an expense.
func (d *Debt) SettlementType() TransactionType {
	if d.Type == DebtReceivable {
		return TxIncome
	}
	return TxExpense
}
