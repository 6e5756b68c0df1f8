package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trungle-dev/sheetbook/internal/dto"
	"github.com/trungle-dev/sheetbook/internal/errs"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/pkg/logger"
)

type recurringRSStore interface {
	List(ctx context.Context) ([]*models.RecurringTransaction, error)
	Add(ctx context.Context, rec *models.RecurringTransaction) (*models.RecurringTransaction, error)
	UpdateNextRun(ctx context.Context, id string, next time.Time) error
	Delete(ctx context.Context, id string) error
}

type transactionRecorder interface {
	RecordTransaction(ctx context.Context, p dto.RecordTransactionParams) (*models.Transaction, error)
}

type recurringService struct {
	recs     recurringRSStore
	ledger   transactionRecorder
	clockNow func() time.Time
}

func NewRecurringService(recs recurringRSStore, ledger transactionRecorder) *recurringService {
	return &recurringService{
		recs:     recs,
		ledger:   ledger,
		clockNow: time.Now,
	}
}

func (s *recurringService) List(ctx context.Context) ([]*models.RecurringTransaction, error) {
	return s.recs.List(ctx)
}

func (s *recurringService) Create(ctx context.Context, p dto.CreateRecurringParams) (*models.RecurringTransaction, error) {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, errs.NewValidationError("amount must be positive")
	}
	if p.AccountID == "" || p.CategoryID == "" {
		return nil, errs.NewValidationError("account and category are required")
	}
	if p.Type != models.TxIncome && p.Type != models.TxExpense {
		return nil, errs.NewValidationError("transaction type must be INCOME or EXPENSE")
	}
	switch p.Frequency {
	case models.FreqDaily, models.FreqWeekly, models.FreqMonthly, models.FreqYearly:
	default:
		return nil, errs.NewValidationError("frequency must be DAILY, WEEKLY, MONTHLY or YEARLY")
	}

	start := p.StartDate
	if start.IsZero() {
		start = s.clockNow()
	}

	return s.recs.Add(ctx, &models.RecurringTransaction{
		Amount:     p.Amount,
		Note:       p.Note,
		AccountID:  p.AccountID,
		CategoryID: p.CategoryID,
		Type:       p.Type,
		Frequency:  p.Frequency,
		StartDate:  start,
		Owner:      p.Owner,
	})
}

// ProcessDue fires every active record whose next run date has been reached,
// at most once per record per pass. A record more than one period overdue
// catches up one period per pass rather than flooding the ledger. The fired
// transaction is dated on the scheduled run date, not the processing time.
func (s *recurringService) ProcessDue(ctx context.Context) (dto.ProcessDueResult, error) {
	result := dto.ProcessDueResult{FiredIDs: []string{}}
	log := logger.FromContext(ctx)
	now := s.clockNow()

	recs, err := s.recs.List(ctx)
	if err != nil {
		return result, err
	}

	for _, rec := range recs {
		if !rec.Active || rec.NextRunDate.IsZero() || rec.NextRunDate.After(now) {
			continue
		}

		_, err := s.ledger.RecordTransaction(ctx, dto.RecordTransactionParams{
			Amount:     rec.Amount,
			Date:       rec.NextRunDate,
			Note:       "[Định kỳ] " + rec.Note,
			AccountID:  rec.AccountID,
			CategoryID: rec.CategoryID,
			Type:       rec.Type,
			Owner:      rec.Owner,
		})
		if err != nil {
			// A step-annotated store error means the transaction row was
			// already appended when the failure hit. Re-firing next pass
			// would duplicate the occurrence, so the schedule advances and
			// the error goes to the operator to reconcile.
			if se, ok := err.(*errs.StoreError); ok && se.Step != "" {
				next := rec.Frequency.NextAfter(rec.NextRunDate)
				if uerr := s.recs.UpdateNextRun(ctx, rec.ID, next); uerr != nil {
					log.Error("schedule not advanced after partial fire",
						"recurring_id", rec.ID,
						"error", uerr.Error())
				}
				result.FiredIDs = append(result.FiredIDs, rec.ID)
				result.Count = len(result.FiredIDs)
				return result, err
			}

			// Nothing was written; leave the schedule untouched so the
			// record fires on the next pass instead of losing a period.
			log.Warn("recurring transaction not fired",
				"recurring_id", rec.ID,
				"error", err.Error())
			continue
		}

		next := rec.Frequency.NextAfter(rec.NextRunDate)
		if err := s.recs.UpdateNextRun(ctx, rec.ID, next); err != nil {
			result.FiredIDs = append(result.FiredIDs, rec.ID)
			result.Count = len(result.FiredIDs)
			return result, stepErr(err, "recurring transaction fired, schedule not advanced")
		}

		result.FiredIDs = append(result.FiredIDs, rec.ID)
		log.Info("recurring transaction fired",
			"recurring_id", rec.ID,
			"run_date", rec.NextRunDate.Format(time.RFC3339),
			"next_run_date", next.Format(time.RFC3339))
	}

	result.Count = len(result.FiredIDs)
	return result, nil
}

func (s *recurringService) Delete(ctx context.Context, id string) error {
	recs, err := s.recs.List(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return s.recs.Delete(ctx, id)
		}
	}
	return errs.NewNotFoundError("recurring transaction not found")
}
