package cache

import (
	"testing"
	"time"
)

// fixed clock the tests can move forward by hand
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestGetWithinTTL(t *testing.T) {
	ck := &clock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ck.now)

	c.Put(Accounts, []string{"a", "b"})
	ck.advance(DefaultTTL - time.Second)

	got, ok := c.Get(Accounts)
	if !ok {
		t.Fatal("expected cache hit within TTL")
	}
	if len(got.([]string)) != 2 {
		t.Fatalf("unexpected snapshot: %v", got)
	}
}

func TestGetAfterTTLMisses(t *testing.T) {
	ck := &clock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ck.now)

	c.Put(Debts, "snapshot")
	ck.advance(DefaultTTL)

	if _, ok := c.Get(Debts); ok {
		t.Fatal("expected miss once TTL elapsed")
	}
}

func TestFeedUsesShortTTL(t *testing.T) {
	ck := &clock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ck.now)

	c.Put(TxFeed, "feed")
	ck.advance(FeedTTL)

	if _, ok := c.Get(TxFeed); ok {
		t.Fatal("transaction feed should expire at the short TTL")
	}
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	ck := &clock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(ck.now)

	c.Put(Accounts, "stale")
	c.Put(TxFeed, "stale")
	c.Invalidate(Accounts, TxFeed)

	if _, ok := c.Get(Accounts); ok {
		t.Fatal("accounts snapshot should be gone after invalidation")
	}
	if _, ok := c.Get(TxFeed); ok {
		t.Fatal("feed snapshot should be gone after invalidation")
	}
}
