package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// RecurringTransaction fires when NextRunDate reaches the evaluation time.
// NextRunDate only moves forward, one period per fire.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	AccountID   string          `json:"accountId"`
	CategoryID  string          `json:"categoryId"`
	Type        TransactionType `json:"type"`
	Frequency   Frequency       `json:"frequency"`
	StartDate   time.Time       `json:"startDate"`
	NextRunDate time.Time       `json:"nextRunDate"`
	Active      bool            `json:"active"`
	Owner       Owner           `json:"owner"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NextAfter advances a run date by exactly one period from the given date
// (not from "now"), so overdue records catch up one period per fire.
func (f Frequency) NextAfter(d time.Time) time.Time {
	switch f {
	case FreqDaily:
		return d.AddDate(0, 0, 1)
	case FreqWeekly:
		return d.AddDate(0, 0, 7)
	case FreqMonthly:
		return d.AddDate(0, 1, 0)
	case FreqYearly:
		return d.AddDate(1, 0, 0)
	default:
		return d
	}
}
