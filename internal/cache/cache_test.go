package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"mlb-stats-service/internal/metrics"
)

type fetchScript struct {
	calls   int
	payload []byte
	err     error
}

func (f *fetchScript) refetch(ctx context.Context) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestCache(t *testing.T) (*Cache, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return New(store, nil, metrics.NewRecorder()), store
}

func TestFetchColdMissStoresAndReturns(t *testing.T) {
	c, store := newTestCache(t)
	key := NewKey(CategorySchedule, "1", "2024-05-31", "2024-06-02")
	fetch := &fetchScript{payload: []byte(`{"dates":[]}`)}

	payload, stale, err := c.Fetch(context.Background(), key, FixedTTL(time.Minute), fetch.refetch)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stale {
		t.Fatal("expected fresh result")
	}
	if string(payload) != `{"dates":[]}` {
		t.Fatalf("unexpected payload %s", payload)
	}

	entry, found, _ := store.Get(context.Background(), key)
	if !found || string(entry.Payload) != `{"dates":[]}` {
		t.Fatal("expected entry to be stored")
	}
}

func TestFetchColdMissPropagatesUpstreamFailure(t *testing.T) {
	c, _ := newTestCache(t)
	wantErr := errors.New("upstream down")
	fetch := &fetchScript{err: wantErr}

	_, _, err := c.Fetch(context.Background(), NewKey(CategoryGameFeed, "745310"), FixedTTL(time.Minute), fetch.refetch)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestFetchFreshEntrySkipsRefetch(t *testing.T) {
	c, store := newTestCache(t)
	key := NewKey(CategorySchedule, "1")
	store.Put(context.Background(), key, []byte(`{"cached":true}`))

	fetch := &fetchScript{payload: []byte(`{"fresh":true}`)}
	payload, stale, err := c.Fetch(context.Background(), key, FixedTTL(time.Hour), fetch.refetch)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stale {
		t.Fatal("expected fresh result")
	}
	if string(payload) != `{"cached":true}` {
		t.Fatalf("expected cached payload, got %s", payload)
	}
	if fetch.calls != 0 {
		t.Fatalf("expected no refetch, got %d calls", fetch.calls)
	}
}

func TestFetchExpiredEntryRefetches(t *testing.T) {
	c, store := newTestCache(t)
	key := NewKey(CategorySchedule, "1")
	store.Put(context.Background(), key, []byte(`{"cached":true}`))

	c.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	fetch := &fetchScript{payload: []byte(`{"fresh":true}`)}
	payload, stale, err := c.Fetch(context.Background(), key, FixedTTL(5*time.Minute), fetch.refetch)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if stale {
		t.Fatal("expected fresh result after refetch")
	}
	if string(payload) != `{"fresh":true}` {
		t.Fatalf("expected refetched payload, got %s", payload)
	}

	entry, _, _ := store.Get(context.Background(), key)
	if string(entry.Payload) != `{"fresh":true}` {
		t.Fatal("expected store to hold the new payload")
	}
}

func TestFetchServesStaleOnRefetchFailure(t *testing.T) {
	c, store := newTestCache(t)
	key := NewKey(CategoryPostseason, "2024", "1")
	store.Put(context.Background(), key, []byte(`{"series":[]}`))

	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	fetch := &fetchScript{err: errors.New("upstream down")}
	payload, stale, err := c.Fetch(context.Background(), key, FixedTTL(time.Hour), fetch.refetch)
	if err != nil {
		t.Fatalf("expected stale fallback, got %v", err)
	}
	if !stale {
		t.Fatal("expected wasStale=true")
	}
	if string(payload) != `{"series":[]}` {
		t.Fatalf("expected stale payload, got %s", payload)
	}

	// Failed refetches never touch the stored entry.
	entry, _, _ := store.Get(context.Background(), key)
	if string(entry.Payload) != `{"series":[]}` {
		t.Fatal("expected stored entry to be untouched")
	}
}

func TestLiveAwareTTLShrinksForLiveDocuments(t *testing.T) {
	policy := LiveAwareTTL(5*time.Minute, time.Minute, func(payload []byte) bool {
		return string(payload) == "live"
	})

	liveTTL := policy([]byte("live"))
	settledTTL := policy([]byte("settled"))
	if liveTTL >= settledTTL {
		t.Fatalf("expected live TTL (%s) < settled TTL (%s)", liveTTL, settledTTL)
	}
	if liveTTL != time.Minute || settledTTL != 5*time.Minute {
		t.Fatalf("unexpected TTLs: %s / %s", liveTTL, settledTTL)
	}
}

func TestFetchRecordsOutcomes(t *testing.T) {
	rec := metrics.NewRecorder()
	store := NewMemoryStore()
	c := New(store, nil, rec)
	key := NewKey(CategorySchedule, "1")

	fetch := &fetchScript{payload: []byte(`{}`)}
	c.Fetch(context.Background(), key, FixedTTL(time.Hour), fetch.refetch) // refresh (cold)
	c.Fetch(context.Background(), key, FixedTTL(time.Hour), fetch.refetch) // hit

	snap := rec.Cache(string(CategorySchedule))
	if snap.Refreshes != 1 || snap.Hits != 1 {
		t.Fatalf("unexpected cache snapshot: %+v", snap)
	}
}

func TestKeyStringSanitizesParams(t *testing.T) {
	key := NewKey(CategorySchedule, "1", "2024-05-31", "weird/../param")
	want := "schedule/1_2024-05-31_weird-..-param"
	if got := key.String(); got != want {
		t.Fatalf("key string = %s, want %s", got, want)
	}
}
