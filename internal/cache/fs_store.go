package cache

import (
	"context"
	"os"
	"path/filepath"
)

// FSStore persists entries as JSON files under a base directory, one
// file per key at {base}/{category}/{params}.json. The file mtime is
// the entry's stored-at timestamp.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

func (s *FSStore) path(key Key) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key.String())+".json")
}

// Get reads the entry for key, if present.
func (s *FSStore) Get(ctx context.Context, key Key) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}
	target := s.path(key)

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}

	payload, err := os.ReadFile(target)
	if err != nil {
		return Entry{}, false, err
	}
	return Entry{Payload: payload, StoredAt: info.ModTime()}, true, nil
}

// Put atomically replaces the entry for key.
func (s *FSStore) Put(ctx context.Context, key Key, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := s.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
