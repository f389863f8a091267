package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
	"github.com/jmonteiro/carpool-ledger/internal/repo"
)

// Warning flags a non-fatal condition on an otherwise successful operation.
// The caller decides how to present it — the domain never blocks on a
// confirmation dialog.
type Warning string

// TripService implements business logic for trip operations: validation on
// writes, duplicate-leg warnings, and thin delegation to the ledger for reads.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and persists a new trip. A second trip sharing the same
// date and direction is allowed but flagged with a Warning, so a UI can ask
// for confirmation without the ledger caring how.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, []Warning, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, nil, err
	}

	existing, err := s.trips.ListByDate(ctx, trip.Date)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	var warnings []Warning
	for _, other := range existing {
		if other.Direction == trip.Direction {
			warnings = append(warnings, Warning(
				fmt.Sprintf("a %s trip already exists on %s", trip.Direction, trip.Date)))
			break
		}
	}

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, warnings, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// ListByDate returns all trips on the given date, any direction, in storage
// order. Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByDate(ctx context.Context, date string) ([]domain.Trip, error) {
	trips, err := s.trips.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByDate: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListByMonth returns all trips within the given calendar month.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Trip, error) {
	trips, err := s.trips.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByMonth: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.ID == "" {
		return domain.Trip{}, fmt.Errorf("%w: trip id is required", domain.ErrValidation)
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Date must be a real date in YYYY-MM-DD form.
//   - Direction must be going or returning.
//   - Fare must not be negative.
//   - At least one participant is required.
//   - The payer must appear among the participants.
func validateTrip(trip domain.Trip) error {
	if _, err := time.Parse(domain.DateLayout, trip.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD form", domain.ErrValidation)
	}
	if !trip.Direction.Valid() {
		return fmt.Errorf("%w: direction must be %q or %q", domain.ErrValidation,
			domain.DirectionGoing, domain.DirectionReturning)
	}
	if trip.Fare < 0 {
		return fmt.Errorf("%w: fare must not be negative", domain.ErrValidation)
	}
	if len(trip.Participants) == 0 {
		return fmt.Errorf("%w: at least one participant is required", domain.ErrValidation)
	}
	for _, p := range trip.Participants {
		if p.Username == trip.Payer.Username {
			return nil
		}
	}
	return fmt.Errorf("%w: payer must be one of the participants", domain.ErrValidation)
}
