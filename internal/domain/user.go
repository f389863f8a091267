// Package domain contains the core data types for the carpool ledger.
// This package has zero external dependencies and is imported by every other
// internal package (store, repo, service, handler).
package domain

// User is one registered account. Username is the primary key; the directory
// enforces its uniqueness at write time, not the store.
// Password is stored and compared as plaintext. This mirrors the persisted
// data format the application inherited; see DESIGN.md for the open gap.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// DefaultAdmin returns the administrative account seeded on first run.
// Every persisted users document must contain this record; the user
// directory re-inserts it before any bulk replace that drops it.
func DefaultAdmin() User {
	return User{Username: "admin", Password: "admin123", Name: "Admin User"}
}
