package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account balances are the "real" money in the system. Only the ledger
// service mutates CurrentBalance; nothing writes it directly from a handler.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
