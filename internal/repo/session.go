package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

// SessionRepo persists the single currentSession document.
type SessionRepo interface {
	// Get returns the persisted session identity.
	// Returns domain.ErrNotFound when no session is stored.
	Get(ctx context.Context) (domain.Session, error)

	// Put replaces the persisted session with the given identity.
	Put(ctx context.Context, session domain.Session) error

	// Clear resets the session document to its empty form. The document
	// itself is never removed.
	Clear(ctx context.Context) error
}

// storeSessionRepo is the document-store implementation of SessionRepo.
type storeSessionRepo struct {
	store store.Store
}

// NewSessionRepo constructs a SessionRepo backed by the provided store.
func NewSessionRepo(s store.Store) SessionRepo {
	return &storeSessionRepo{store: s}
}

func (r *storeSessionRepo) Get(ctx context.Context) (domain.Session, error) {
	data, err := r.store.Read(ctx, store.KeySession)
	if err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: decode: %w", err)
	}
	if session.IsZero() {
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
	}
	return session, nil
}

func (r *storeSessionRepo) Put(ctx context.Context, session domain.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Put: encode: %w", err)
	}
	if err := r.store.Write(ctx, store.KeySession, data); err != nil {
		return fmt.Errorf("repo.SessionRepo.Put: %w", err)
	}
	return nil
}

func (r *storeSessionRepo) Clear(ctx context.Context) error {
	if err := r.store.Reset(ctx, store.KeySession); err != nil {
		return fmt.Errorf("repo.SessionRepo.Clear: %w", err)
	}
	return nil
}
