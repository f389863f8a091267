package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/repo"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

// DocumentService mediates raw document access for the HTTP layer. It keeps
// the handlers transport-only: key validation, body checks, and the users
// admin invariant all live here, with the invariant itself delegated to the
// user directory.
type DocumentService struct {
	store store.Store
	users repo.UserRepo
}

// NewDocumentService constructs a DocumentService over the given store and
// user directory.
func NewDocumentService(s store.Store, users repo.UserRepo) *DocumentService {
	return &DocumentService{store: s, users: users}
}

// Get returns the raw JSON document for key.
// Returns domain.ErrNotFound for unknown keys.
func (s *DocumentService) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.store.Read(ctx, store.Key(key))
	if err != nil {
		return nil, fmt.Errorf("service.DocumentService.Get: %w", err)
	}
	return data, nil
}

// Put replaces the whole document for key with body.
//
// The users document gets special treatment: the body must decode as an
// array of user records, and the replace goes through the directory so the
// administrative account is re-inserted when the new collection lacks it.
// Other documents only need to be well-formed JSON.
func (s *DocumentService) Put(ctx context.Context, key string, body []byte) error {
	k := store.Key(key)
	if !k.Valid() {
		return fmt.Errorf("service.DocumentService.Put: %q: %w", key, domain.ErrNotFound)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: request body is required", domain.ErrValidation)
	}

	if k == store.KeyUsers {
		var users []domain.User
		if err := json.Unmarshal(body, &users); err != nil {
			return fmt.Errorf("%w: users data must be an array", domain.ErrValidation)
		}
		if err := s.users.Replace(ctx, users); err != nil {
			return fmt.Errorf("service.DocumentService.Put: %w", err)
		}
		return nil
	}

	if !json.Valid(body) {
		return fmt.Errorf("%w: request body must be valid JSON", domain.ErrValidation)
	}
	if err := s.store.Write(ctx, k, body); err != nil {
		return fmt.Errorf("service.DocumentService.Put: %w", err)
	}
	return nil
}

// Reset replaces the document with its empty form ([] or {}); the document
// key itself survives. Returns domain.ErrNotFound for unknown keys.
func (s *DocumentService) Reset(ctx context.Context, key string) error {
	if err := s.store.Reset(ctx, store.Key(key)); err != nil {
		return fmt.Errorf("service.DocumentService.Reset: %w", err)
	}
	return nil
}
