package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is keyed by (CategoryID, Period); at most one row per pair.
type Budget struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

const PeriodMonthly = "MONTHLY"
