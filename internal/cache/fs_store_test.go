package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store := NewFSStore(t.TempDir())
	key := NewKey(CategorySchedule, "1", "2024-05-31", "2024-06-02")

	if _, found, err := store.Get(context.Background(), key); err != nil || found {
		t.Fatalf("expected clean miss, got found=%v err=%v", found, err)
	}

	if err := store.Put(context.Background(), key, []byte(`{"dates":[]}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, found, err := store.Get(context.Background(), key)
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if string(entry.Payload) != `{"dates":[]}` {
		t.Fatalf("unexpected payload %s", entry.Payload)
	}
	if time.Since(entry.StoredAt) > time.Minute {
		t.Fatalf("unexpected stored-at %s", entry.StoredAt)
	}
}

func TestFSStoreOverwriteReplacesWholeDocument(t *testing.T) {
	store := NewFSStore(t.TempDir())
	key := NewKey(CategoryGameFeed, "745310")

	store.Put(context.Background(), key, []byte(`{"v":1,"padding":"xxxxxxxxxxxx"}`))
	store.Put(context.Background(), key, []byte(`{"v":2}`))

	entry, _, _ := store.Get(context.Background(), key)
	if string(entry.Payload) != `{"v":2}` {
		t.Fatalf("expected full replacement, got %s", entry.Payload)
	}
}

func TestFSStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore(dir)
	key := NewKey(CategoryStandings, "2024")

	store.Put(context.Background(), key, []byte(`{}`))

	entries, err := os.ReadDir(filepath.Join(dir, "standings"))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("unexpected temp file %s", e.Name())
		}
	}
}

func TestMemoryStoreCopiesPayload(t *testing.T) {
	store := NewMemoryStore()
	key := NewKey(CategoryTeams, "11")

	payload := []byte(`{"teams":[]}`)
	store.Put(context.Background(), key, payload)
	payload[0] = 'X'

	entry, _, _ := store.Get(context.Background(), key)
	if string(entry.Payload) != `{"teams":[]}` {
		t.Fatalf("expected stored copy to be isolated, got %s", entry.Payload)
	}
}
