package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// TieredStore layers a fallback store behind a primary one, replacing the
// original application's ad hoc catch-and-use-local-storage behavior with an
// explicit two-tier policy:
//
//   - reads try the primary and fall back on failure;
//   - writes that fail on the primary are diverted to the fallback, which
//     recovers the operation but is best-effort — diverted data is never
//     reconciled back to the primary;
//   - unknown-key errors are contract violations, not outages, and are
//     returned as-is without touching the fallback.
//
// Every divergence is logged so an operator can tell the tiers have drifted.
type TieredStore struct {
	primary  Store
	fallback Store
	log      *slog.Logger
}

// NewTieredStore wires a primary store with its fallback.
func NewTieredStore(primary, fallback Store, log *slog.Logger) *TieredStore {
	if log == nil {
		log = slog.Default()
	}
	return &TieredStore{primary: primary, fallback: fallback, log: log}
}

// Read returns the document from the primary, or from the fallback when the
// primary read fails.
func (s *TieredStore) Read(ctx context.Context, key Key) ([]byte, error) {
	data, err := s.primary.Read(ctx, key)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return data, err
	}
	s.log.WarnContext(ctx, "primary store read failed, using fallback", "key", key, "error", err)
	return s.fallback.Read(ctx, key)
}

// Write replaces the document in the primary. A primary failure diverts the
// write to the fallback; the operation succeeds if the fallback takes it.
func (s *TieredStore) Write(ctx context.Context, key Key, data []byte) error {
	err := s.primary.Write(ctx, key, data)
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.log.WarnContext(ctx, "primary store write failed, diverting to fallback", "key", key, "error", err)
	return s.fallback.Write(ctx, key, data)
}

// Update applies fn against the primary, or against the fallback when the
// primary update fails. Errors raised by fn itself (conflicts, validation)
// abort the update without touching the fallback — only store-level failures
// divert.
func (s *TieredStore) Update(ctx context.Context, key Key, fn UpdateFunc) error {
	err := s.primary.Update(ctx, key, fn)
	if err == nil || isDomainErr(err) {
		return err
	}
	s.log.WarnContext(ctx, "primary store update failed, diverting to fallback", "key", key, "error", err)
	return s.fallback.Update(ctx, key, fn)
}

// Reset clears the document on both tiers. The fallback reset is best-effort
// when the primary succeeds; it keeps a previously diverted session or
// collection from resurfacing after the outage ends.
func (s *TieredStore) Reset(ctx context.Context, key Key) error {
	err := s.primary.Reset(ctx, key)
	if err == nil {
		_ = s.fallback.Reset(ctx, key)
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.log.WarnContext(ctx, "primary store reset failed, diverting to fallback", "key", key, "error", err)
	return s.fallback.Reset(ctx, key)
}

// isDomainErr reports whether err is one of the domain sentinels, as opposed
// to an I/O-level store failure.
func isDomainErr(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrInvalidCredentials)
}
