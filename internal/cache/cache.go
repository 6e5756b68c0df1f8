package cache

import (
	"sync"
	"time"
)

// Kind identifies one cached entity snapshot.
type Kind string

const (
	Accounts   Kind = "accounts"
	Categories Kind = "categories"
	TxFeed     Kind = "transactions"
	Debts      Kind = "debts"
	Templates  Kind = "templates"
	Budgets    Kind = "budgets"
	Goals      Kind = "goals"
	Recurring  Kind = "recurring"
)

// Entity snapshots change slowly; the transaction feed is hotter and gets a
// much shorter window.
const (
	DefaultTTL = 30 * time.Second
	FeedTTL    = 5 * time.Second
)

type entry struct {
	data      any
	fetchedAt time.Time
	ttl       time.Duration
}

// Cache holds one snapshot per entity kind. A snapshot past its TTL is a
// miss, never silently served; mutators call Invalidate so the next read
// re-fetches. Safe for concurrent use within a single process — the backing
// store stays the source of truth across processes.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[Kind]entry
}

func New(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		now:     now,
		entries: make(map[Kind]entry),
	}
}

// Get returns the cached snapshot for kind, or ok=false on a miss or expiry.
func (c *Cache) Get(kind Kind) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[kind]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= e.ttl {
		delete(c.entries, kind)
		return nil, false
	}
	return e.data, true
}

// Put stores a snapshot with the kind's TTL.
func (c *Cache) Put(kind Kind, data any) {
	ttl := DefaultTTL
	if kind == TxFeed {
		ttl = FeedTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind] = entry{data: data, fetchedAt: c.now(), ttl: ttl}
}

// Invalidate drops the snapshots for the given kinds.
func (c *Cache) Invalidate(kinds ...Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range kinds {
		delete(c.entries, k)
	}
}
