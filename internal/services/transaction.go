package services

import (
	"context"

	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/store"
)

type transactionFeedStore interface {
	ListRecent(ctx context.Context, limit int) ([]*models.Transaction, error)
}

type transactionService struct {
	txs transactionFeedStore
}

func NewTransactionService(txs transactionFeedStore) *transactionService {
	return &transactionService{txs: txs}
}

// Feed returns the newest transactions. A non-positive limit falls back to
// the standard feed page.
func (s *transactionService) Feed(ctx context.Context, limit int) ([]*models.Transaction, error) {
	if limit <= 0 {
		limit = store.FeedSize
	}
	return s.txs.ListRecent(ctx, limit)
}
