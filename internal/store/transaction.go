package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trungle-dev/sheetbook/internal/cache"
	"github.com/trungle-dev/sheetbook/internal/models"
	"github.com/trungle-dev/sheetbook/internal/sheetstore"
)

// FeedSize is the page size the dashboard feed is cached at. Other limits
// bypass the cache because their result sets differ.
const FeedSize = 50

type transactionStore struct {
	st sheetstore.Store
	c  *cache.Cache
}

func NewTransactionStore(st sheetstore.Store, c *cache.Cache) *transactionStore {
	return &transactionStore{st: st, c: c}
}

// Add appends the immutable transaction row. It invalidates the feed and the
// accounts snapshot: almost every transaction is followed by a balance
// mutation, and a read between the two must not observe a stale pairing.
func (s *transactionStore) Add(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	err := s.st.Append(ctx, sheetstore.SheetTxs, map[string]string{
		"id":               tx.ID,
		"amount":           tx.Amount.String(),
		"date":             formatTime(tx.Date),
		"note":             tx.Note,
		"account_id":       tx.AccountID,
		"category_id":      tx.CategoryID,
		"transaction_type": string(tx.Type),
		"owner":            string(tx.Owner),
		"created_at":       formatTime(tx.CreatedAt),
	})
	if err != nil {
		return nil, err
	}

	s.c.Invalidate(cache.TxFeed, cache.Accounts)
	return tx, nil
}

// ListRecent returns the newest transactions first. Only the fixed feed page
// size is cached, at the short TTL.
func (s *transactionStore) ListRecent(ctx context.Context, limit int) ([]*models.Transaction, error) {
	if limit == FeedSize {
		if snap, ok := s.c.Get(cache.TxFeed); ok {
			return snap.([]*models.Transaction), nil
		}
	}

	txs, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}

	if limit == FeedSize {
		s.c.Put(cache.TxFeed, txs)
	}
	return txs, nil
}

// ListAll fetches the full history uncached; reconciliation needs every row.
func (s *transactionStore) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.st.Rows(ctx, sheetstore.SheetTxs)
	if err != nil {
		return nil, err
	}

	txs := make([]*models.Transaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, &models.Transaction{
			ID:         r.Get("id"),
			Amount:     parseDecimal(r.Get("amount")),
			Date:       parseTime(r.Get("date")),
			Note:       r.Get("note"),
			AccountID:  r.Get("account_id"),
			CategoryID: r.Get("category_id"),
			Type:       models.TransactionType(r.Get("transaction_type")),
			Owner:      models.Owner(r.Get("owner")),
			CreatedAt:  parseTime(r.Get("created_at")),
		})
	}
	return txs, nil
}
