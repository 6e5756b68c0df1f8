package dto

import "github.com/shopspring/decimal"

type CreateAccountParams struct {
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

type RenameAccountParams struct {
	Name string `json:"name"`
}
