package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/repo"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

func newSessionRepo() repo.SessionRepo {
	return repo.NewSessionRepo(store.NewMemoryStore())
}

func TestSessionRepo_Get_EmptyDocument(t *testing.T) {
	_, err := newSessionRepo().Get(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_PutThenGet(t *testing.T) {
	r := newSessionRepo()

	want := domain.Session{Username: "erin", Name: "Erin"}
	require.NoError(t, r.Put(context.Background(), want))

	got, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSessionRepo_ClearThenGet(t *testing.T) {
	r := newSessionRepo()

	require.NoError(t, r.Put(context.Background(), domain.Session{Username: "erin", Name: "Erin"}))
	require.NoError(t, r.Clear(context.Background()))

	_, err := r.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_ClearWithoutSession(t *testing.T) {
	// Clearing an already-empty session is a no-op, not an error.
	assert.NoError(t, newSessionRepo().Clear(context.Background()))
}
