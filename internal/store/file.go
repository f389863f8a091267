package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// fileNames maps document keys to their on-disk file names.
// The session document keeps the short file name the original data set used.
var fileNames = map[Key]string{
	KeyUsers:   "users.json",
	KeyTrips:   "trips.json",
	KeySession: "session.json",
}

// FileStore persists each document as one JSON file under a data directory.
// Writes go through a temp file followed by a rename, so readers — including
// a process restarted after a crash — only ever see a complete document.
// A mutex per key serializes all operations on the same document.
type FileStore struct {
	dir string
	mu  map[Key]*sync.Mutex
}

// NewFileStore creates the data directory if needed and seeds any missing
// document files: users with the administrative account, trips with [],
// currentSession with {}. Existing files are left untouched.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store.NewFileStore: create data dir: %w", err)
	}

	s := &FileStore{dir: dir, mu: make(map[Key]*sync.Mutex, len(allKeys))}
	for _, k := range allKeys {
		s.mu[k] = &sync.Mutex{}

		path := s.path(k)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store.NewFileStore: stat %s: %w", path, err)
		}
		if err := writeAtomic(path, seedDocument(k)); err != nil {
			return nil, fmt.Errorf("store.NewFileStore: seed %s: %w", k, err)
		}
	}
	return s, nil
}

// Read returns the current contents of the document for key.
func (s *FileStore) Read(_ context.Context, key Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("store.FileStore.Read: %q: %w", key, domain.ErrNotFound)
	}
	s.mu[key].Lock()
	defer s.mu[key].Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("store.FileStore.Read: %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("store.FileStore.Read: %w", err)
	}
	return data, nil
}

// Write atomically replaces the document for key.
func (s *FileStore) Write(_ context.Context, key Key, data []byte) error {
	if !key.Valid() {
		return fmt.Errorf("store.FileStore.Write: %q: %w", key, domain.ErrNotFound)
	}
	s.mu[key].Lock()
	defer s.mu[key].Unlock()

	if err := writeAtomic(s.path(key), data); err != nil {
		return fmt.Errorf("store.FileStore.Write: %w", err)
	}
	return nil
}

// Update applies fn to the document for key while holding the key's lock,
// so concurrent read-modify-write cycles cannot lose each other's changes.
func (s *FileStore) Update(_ context.Context, key Key, fn UpdateFunc) error {
	if !key.Valid() {
		return fmt.Errorf("store.FileStore.Update: %q: %w", key, domain.ErrNotFound)
	}
	s.mu[key].Lock()
	defer s.mu[key].Unlock()

	current, err := os.ReadFile(s.path(key))
	if err != nil {
		return fmt.Errorf("store.FileStore.Update: read: %w", err)
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path(key), next); err != nil {
		return fmt.Errorf("store.FileStore.Update: write: %w", err)
	}
	return nil
}

// Reset replaces the document with its empty form. The file stays in place.
func (s *FileStore) Reset(ctx context.Context, key Key) error {
	return s.Write(ctx, key, emptyDocument(key))
}

// path returns the file backing the given key.
func (s *FileStore) path(key Key) string {
	return filepath.Join(s.dir, fileNames[key])
}

// writeAtomic writes data to a temp file in the same directory, then renames
// it over path. Rename is atomic on POSIX filesystems, so a crash mid-write
// leaves the previous document intact.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
