package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal CurrentAmount only grows, and only via contributions.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline,omitzero"`
	Icon          string          `json:"icon"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
