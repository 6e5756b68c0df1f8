package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxIncome  TransactionType = "INCOME"
	TxExpense TransactionType = "EXPENSE"
)

// Transaction rows are immutable once appended; corrections are new
// offsetting transactions, never edits.
type Transaction struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note"`
	AccountID  string          `json:"accountId"`
	CategoryID string          `json:"categoryId"`
	Type       TransactionType `json:"transactionType"`
	Owner      Owner           `json:"owner"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// IsTransferLeg reports whether this row is half of a synthesized transfer.
func (t *Transaction) IsTransferLeg() bool {
	return t.CategoryID == CategoryTransferOut || t.CategoryID == CategoryTransferIn
}

// Signed returns the net-flow contribution of the transaction: positive for
// income, negative for expense.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TxIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
