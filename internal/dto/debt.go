package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/models"
)

type CreateDebtParams struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Type   models.DebtType `json:"type"`
	Note   string          `json:"note"`
	Date   time.Time       `json:"date"`
}

type SettleDebtParams struct {
	DebtID     string    `json:"-"`
	AccountID  string    `json:"accountId"`
	CategoryID string    `json:"categoryId"`
	Date       time.Time `json:"date"`
}
