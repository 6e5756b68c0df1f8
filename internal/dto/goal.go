package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateGoalParams struct {
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Deadline time.Time       `json:"deadline,omitzero"`
	Icon     string          `json:"icon"`
}

type ContributeParams struct {
	GoalID    string          `json:"-"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"accountId"`
	Date      time.Time       `json:"date,omitzero"`
}
