package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (user, trip, session, or document key) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative fare).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when creating a resource whose identity is already
// taken (duplicate username).
var ErrConflict = errors.New("already exists")

// ErrInvalidCredentials is returned by login when the user is unknown or the
// password does not match. The same error covers both cases so callers cannot
// tell which field was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrStore is returned when a document store operation fails and no fallback
// could absorb it. Handlers should map this to HTTP 500.
var ErrStore = errors.New("store failure")
