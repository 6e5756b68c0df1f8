package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/models"
)

type CreateRecurringParams struct {
	Amount     decimal.Decimal        `json:"amount"`
	Note       string                 `json:"note"`
	AccountID  string                 `json:"accountId"`
	CategoryID string                 `json:"categoryId"`
	Type       models.TransactionType `json:"type"`
	Frequency  models.Frequency       `json:"frequency"`
	StartDate  time.Time              `json:"startDate,omitzero"`
	Owner      models.Owner           `json:"owner"`
}

// ProcessDueResult lists the recurring records fired by one scheduler pass.
// An empty list is a normal outcome.
type ProcessDueResult struct {
	FiredIDs []string `json:"firedIds"`
	Count    int      `json:"count"`
}
