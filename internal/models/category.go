package models

import "time"

type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

type Owner string

const (
	OwnerPersonal Owner = "PERSONAL"
	OwnerCompany  Owner = "COMPANY"
)

// Reserved category markers. These never resolve to a Categories row; they
// tag synthesized transaction legs so downstream reads can tell them apart.
const (
	CategoryTransferOut = "TRANSFER_OUT"
	CategoryTransferIn  = "TRANSFER_IN"
	CategorySavings     = "SAVINGS_CONTRIBUTION"
)

type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	OwnerTag  Owner        `json:"ownerTag"`
	CreatedAt time.Time    `json:"createdAt"`
}
