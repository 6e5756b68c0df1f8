package dto

import (
	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/models"
)

type CreateTemplateParams struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId"`
	Owner      models.Owner    `json:"owner"`
}
