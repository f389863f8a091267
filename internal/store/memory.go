package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// MemoryStore keeps all documents in a map. It is the in-process fallback
// tier behind the file store and the backing store of choice in tests.
// Contents do not survive a restart.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[Key][]byte
}

// NewMemoryStore returns a MemoryStore seeded exactly like a first-run
// FileStore: admin user, empty trips, empty session.
func NewMemoryStore() *MemoryStore {
	docs := make(map[Key][]byte, len(allKeys))
	for _, k := range allKeys {
		docs[k] = seedDocument(k)
	}
	return &MemoryStore{docs: docs}
}

// Read returns a copy of the document for key.
func (s *MemoryStore) Read(_ context.Context, key Key) ([]byte, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("store.MemoryStore.Read: %q: %w", key, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make([]byte, len(s.docs[key]))
	copy(data, s.docs[key])
	return data, nil
}

// Write replaces the document for key.
func (s *MemoryStore) Write(_ context.Context, key Key, data []byte) error {
	if !key.Valid() {
		return fmt.Errorf("store.MemoryStore.Write: %q: %w", key, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = append([]byte(nil), data...)
	return nil
}

// Update applies fn to the document for key under the store lock.
func (s *MemoryStore) Update(_ context.Context, key Key, fn UpdateFunc) error {
	if !key.Valid() {
		return fmt.Errorf("store.MemoryStore.Update: %q: %w", key, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.docs[key])
	if err != nil {
		return err
	}
	s.docs[key] = append([]byte(nil), next...)
	return nil
}

// Reset replaces the document with its empty form.
func (s *MemoryStore) Reset(ctx context.Context, key Key) error {
	return s.Write(ctx, key, emptyDocument(key))
}
