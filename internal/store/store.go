// Package store implements the document persistence layer for the carpool
// ledger. Data lives in three named JSON documents (users, trips,
// currentSession); every write is a complete, atomic replace of one document,
// never an incremental patch, so a crash between operations can only ever
// expose the previous complete version.
package store

import (
	"context"
	"encoding/json"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// Key names one persisted JSON document.
type Key string

// The fixed, enumerable set of document keys. Any other key fails with
// domain.ErrNotFound.
const (
	KeyUsers   Key = "users"
	KeyTrips   Key = "trips"
	KeySession Key = "currentSession"
)

// allKeys lists every known key, in seeding order.
var allKeys = []Key{KeyUsers, KeyTrips, KeySession}

// Valid reports whether k names a known document.
func (k Key) Valid() bool {
	for _, known := range allKeys {
		if k == known {
			return true
		}
	}
	return false
}

// UpdateFunc transforms the current contents of a document into its
// replacement. Returning an error aborts the update and leaves the document
// untouched.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is the contract every backing store implements. Documents are raw
// JSON; typed marshalling belongs to the repo layer.
//
// Update runs its read-modify-write cycle while holding the key's lock, so
// two concurrent updates of the same document cannot lose each other's
// changes — the classic read-snapshot-then-overwrite race of naive
// file-backed stores.
type Store interface {
	// Read returns the current document for key.
	// Returns domain.ErrNotFound for unknown keys.
	Read(ctx context.Context, key Key) ([]byte, error)

	// Write atomically replaces the document for key.
	// Returns domain.ErrNotFound for unknown keys.
	Write(ctx context.Context, key Key, data []byte) error

	// Update atomically applies fn to the document for key.
	Update(ctx context.Context, key Key, fn UpdateFunc) error

	// Reset replaces the document with its empty form ([] for collections,
	// {} for the session). It never removes the key itself.
	Reset(ctx context.Context, key Key) error
}

// emptyDocument returns the empty form a Reset writes for key.
func emptyDocument(k Key) []byte {
	if k == KeySession {
		return []byte("{}")
	}
	return []byte("[]")
}

// seedDocument returns the first-run contents for key: the users document
// starts with the administrative account, everything else starts empty.
func seedDocument(k Key) []byte {
	if k == KeyUsers {
		// Marshalling a static struct cannot fail.
		data, _ := json.MarshalIndent([]domain.User{domain.DefaultAdmin()}, "", "  ")
		return data
	}
	return emptyDocument(k)
}
