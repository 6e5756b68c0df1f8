package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionTemplate is a quick-add shortcut; it has no balance effect of
// its own.
type TransactionTemplate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId"`
	Owner      Owner           `json:"owner"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
