package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/models"
)

// RecordTransactionParams carries one income/expense recording. The
// Adjustment flag records the row without touching the account balance, so
// reconciliation can correct the book total without moving real money.
type RecordTransactionParams struct {
	Amount     decimal.Decimal        `json:"amount"`
	Date       time.Time              `json:"date"`
	Note       string                 `json:"note"`
	AccountID  string                 `json:"accountId"`
	CategoryID string                 `json:"categoryId"`
	Type       models.TransactionType `json:"type"`
	Owner      models.Owner           `json:"owner"`
	Adjustment bool                   `json:"isAdjustment"`
}

// TransferParams describes a logical transfer, which the ledger decomposes
// into two transaction rows.
type TransferParams struct {
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note"`
	SourceID      string          `json:"accountId"`
	DestinationID string          `json:"destAccountId"`
	Adjustment    bool            `json:"isAdjustment"`
}

// TransferResult reports the two synthesized legs.
type TransferResult struct {
	OutTransactionID string `json:"outTransactionId"`
	InTransactionID  string `json:"inTransactionId"`
}
