// Package repo contains the document-store access logic for the carpool
// ledger. Each resource has its own file with an interface and a store-backed
// implementation. No business logic lives here — only JSON mapping and the
// per-document invariants of the persistence contract.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

// UserRepo defines the user directory operations.
// The service layer depends on this interface, not the store-backed
// implementation, which allows services to be unit-tested with a mock.
type UserRepo interface {
	// List returns all registered users in storage order.
	List(ctx context.Context) ([]domain.User, error)

	// FindByUsername returns the user with the given username.
	// Returns domain.ErrNotFound if no such user exists.
	FindByUsername(ctx context.Context, username string) (domain.User, error)

	// Create appends a new user and returns the stored record.
	// Returns domain.ErrConflict if the username is already taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// Update replaces the full record keyed by username.
	// Returns domain.ErrNotFound if no such user exists.
	Update(ctx context.Context, user domain.User) error

	// Replace overwrites the whole users document. The administrative
	// account is re-inserted before persisting if the new collection
	// lacks it.
	Replace(ctx context.Context, users []domain.User) error
}

// storeUserRepo is the document-store implementation of UserRepo.
type storeUserRepo struct {
	store store.Store
}

// NewUserRepo constructs a UserRepo backed by the provided store.
func NewUserRepo(s store.Store) UserRepo {
	return &storeUserRepo{store: s}
}

func (r *storeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	data, err := r.store.Read(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("repo.UserRepo.List: decode: %w", err)
	}
	return users, nil
}

func (r *storeUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.FindByUsername: %w", err)
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, fmt.Errorf("repo.UserRepo.FindByUsername: %q: %w", username, domain.ErrNotFound)
}

// Create appends the user inside a single store update, so two concurrent
// registrations of the same username cannot both succeed.
func (r *storeUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	err := r.store.Update(ctx, store.KeyUsers, func(current []byte) ([]byte, error) {
		var users []domain.User
		if err := json.Unmarshal(current, &users); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		for _, u := range users {
			if u.Username == user.Username {
				return nil, fmt.Errorf("username %q: %w", user.Username, domain.ErrConflict)
			}
		}
		return marshalUsers(append(users, user))
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return user, nil
}

func (r *storeUserRepo) Update(ctx context.Context, user domain.User) error {
	err := r.store.Update(ctx, store.KeyUsers, func(current []byte) ([]byte, error) {
		var users []domain.User
		if err := json.Unmarshal(current, &users); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		for i, u := range users {
			if u.Username == user.Username {
				users[i] = user
				return marshalUsers(users)
			}
		}
		return nil, fmt.Errorf("username %q: %w", user.Username, domain.ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Update: %w", err)
	}
	return nil
}

func (r *storeUserRepo) Replace(ctx context.Context, users []domain.User) error {
	data, err := marshalUsers(users)
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Replace: %w", err)
	}
	if err := r.store.Write(ctx, store.KeyUsers, data); err != nil {
		return fmt.Errorf("repo.UserRepo.Replace: %w", err)
	}
	return nil
}

// marshalUsers encodes the collection after guaranteeing the administrative
// account is present. The guard lives here, on the single write path, so no
// caller can persist a users document that locks the admin out.
func marshalUsers(users []domain.User) ([]byte, error) {
	hasAdmin := false
	admin := domain.DefaultAdmin()
	for _, u := range users {
		if u.Username == admin.Username {
			hasAdmin = true
			break
		}
	}
	if !hasAdmin {
		users = append(users, admin)
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
