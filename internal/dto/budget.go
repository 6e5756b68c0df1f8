package dto

import "github.com/shopspring/decimal"

type SetBudgetParams struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
}
