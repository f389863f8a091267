package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/store"
)

// TripRepo defines the persistence operations for the trip ledger.
type TripRepo interface {
	// Create assigns a fresh ID, appends the trip, and returns the stored
	// record with the ID populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// List returns all trips in storage order.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByDate returns all trips matching the exact date string, any
	// direction, in storage order.
	ListByDate(ctx context.Context, date string) ([]domain.Trip, error)

	// ListByMonth returns all trips whose date falls within the given
	// calendar month, any day.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Trip, error)

	// Update replaces the trip with the same ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound when no
	// record was actually removed.
	Delete(ctx context.Context, id string) error
}

// storeTripRepo is the document-store implementation of TripRepo.
type storeTripRepo struct {
	store store.Store
}

// NewTripRepo constructs a TripRepo backed by the provided store.
func NewTripRepo(s store.Store) TripRepo {
	return &storeTripRepo{store: s}
}

// Create appends the trip inside a single store update. The ID is a random
// UUID rather than the wall-clock timestamp the original data set used, so
// two trips created in the same millisecond cannot collide.
func (r *storeTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	trip.ID = uuid.NewString()
	err := r.store.Update(ctx, store.KeyTrips, func(current []byte) ([]byte, error) {
		trips, err := decodeTrips(current)
		if err != nil {
			return nil, err
		}
		return marshalTrips(append(trips, trip))
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trips, err := r.List(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %q: %w", id, domain.ErrNotFound)
}

func (r *storeTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	data, err := r.store.Read(ctx, store.KeyTrips)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	trips, err := decodeTrips(data)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

func (r *storeTripRepo) ListByDate(ctx context.Context, date string) ([]domain.Trip, error) {
	trips, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByDate: %w", err)
	}
	var matched []domain.Trip
	for _, t := range trips {
		if t.Date == date {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *storeTripRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Trip, error) {
	trips, err := r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByMonth: %w", err)
	}
	var matched []domain.Trip
	for _, t := range trips {
		d, err := time.Parse(domain.DateLayout, t.Date)
		if err != nil {
			// Records with unparsable dates fall outside every month.
			continue
		}
		if d.Year() == year && d.Month() == month {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *storeTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	err := r.store.Update(ctx, store.KeyTrips, func(current []byte) ([]byte, error) {
		trips, err := decodeTrips(current)
		if err != nil {
			return nil, err
		}
		for i, t := range trips {
			if t.ID == trip.ID {
				trips[i] = trip
				return marshalTrips(trips)
			}
		}
		return nil, fmt.Errorf("id %q: %w", trip.ID, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return trip, nil
}

func (r *storeTripRepo) Delete(ctx context.Context, id string) error {
	err := r.store.Update(ctx, store.KeyTrips, func(current []byte) ([]byte, error) {
		trips, err := decodeTrips(current)
		if err != nil {
			return nil, err
		}
		kept := trips[:0]
		for _, t := range trips {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(trips) {
			return nil, fmt.Errorf("id %q: %w", id, domain.ErrNotFound)
		}
		return marshalTrips(kept)
	})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	return nil
}

func decodeTrips(data []byte) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return trips, nil
}

func marshalTrips(trips []domain.Trip) ([]byte, error) {
	data, err := json.MarshalIndent(trips, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
