// Package service contains the business logic for the carpool ledger.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No JSON or file handling lives here — services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/repo"
)

// AuthService implements the session/auth gate: registration, login, logout,
// and restoring a persisted session across restarts.
//
// There is deliberately no in-memory "current user" field. The session is a
// value returned to the caller and a document in the store; keeping no third
// copy means the gate can never report LoggedIn while the store says
// otherwise.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
}

// NewAuthService constructs an AuthService backed by the provided repos.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Register creates a new account. The display name defaults to the username
// when blank. Registration does not log the new user in.
// Returns domain.ErrValidation when username or password is empty and
// domain.ErrConflict when the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password, name string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		name = username
	}

	created, err := s.users.Create(ctx, domain.User{Username: username, Password: password, Name: name})
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return created, nil
}

// Login validates credentials and persists the resulting identity as the
// session document. The identity is only returned once the session has been
// persisted — a store failure fails the login even when the credentials
// matched, so caller state and store can never diverge.
// Returns domain.ErrInvalidCredentials for an unknown user or a password
// mismatch; the error does not reveal which.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	if user.Password != password {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	session := domain.Session{Username: user.Username, Name: user.Name}
	if err := s.sessions.Put(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: persist session: %w", err)
	}
	return session, nil
}

// Logout clears the persisted session. It succeeds regardless of whether a
// session was active.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

// Restore reads the persisted session document, typically at process start.
// A stored identity is trusted as-is — the password is not re-validated.
// Returns domain.ErrNotFound when no session is stored.
func (s *AuthService) Restore(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("service.AuthService.Restore: %w", domain.ErrNotFound)
		}
		return domain.Session{}, fmt.Errorf("service.AuthService.Restore: %w", err)
	}
	return session, nil
}
