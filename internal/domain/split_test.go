package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonteiro/carpool-ledger/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func tripFixture(fare float64, attendance map[string]bool) domain.Trip {
	// Participant order is fixed: alice, bob, carol. Alice is the payer.
	names := map[string]string{"alice": "Alice", "bob": "Bob", "carol": "Carol"}
	trip := domain.Trip{
		ID:        "t-1",
		Date:      "2025-06-01",
		Direction: domain.DirectionGoing,
		Fare:      fare,
		Payer:     domain.PayerRef{Username: "alice", Name: "Alice"},
	}
	for _, u := range []string{"alice", "bob", "carol"} {
		trip.Participants = append(trip.Participants, domain.Participant{
			Username: u,
			Name:     names[u],
			Attended: attendance[u],
		})
	}
	return trip
}

func shareFor(t *testing.T, shares []domain.Share, username string) domain.Share {
	t.Helper()
	for _, s := range shares {
		if s.Username == username {
			return s
		}
	}
	t.Fatalf("no share for %q", username)
	return domain.Share{}
}

// ---- SplitFare -------------------------------------------------------------

func TestSplitFare_TwoAttendeesOneAbsent(t *testing.T) {
	// fare 30.00, alice (payer) and bob attended, carol did not:
	// cost per person is 15.00, alice's balance is +15.00, bob owes 15.00.
	trip := tripFixture(30.00, map[string]bool{"alice": true, "bob": true, "carol": false})

	shares := domain.SplitFare(trip)
	require.Len(t, shares, 3)

	alice := shareFor(t, shares, "alice")
	assert.InDelta(t, 30.00, alice.Paid, 1e-9)
	assert.InDelta(t, 15.00, alice.Owed, 1e-9)
	assert.InDelta(t, 15.00, alice.Balance, 1e-9)
	assert.Equal(t, "Alice: paid $30.00, owes $15.00 (balance: +$15.00)", alice.Note)

	bob := shareFor(t, shares, "bob")
	assert.InDelta(t, 15.00, bob.Owed, 1e-9)
	assert.Equal(t, "Bob: owes $15.00 to Alice", bob.Note)

	carol := shareFor(t, shares, "carol")
	assert.Zero(t, carol.Owed)
	assert.Zero(t, carol.Paid)
	assert.Equal(t, "Carol: $0.00 (did not attend)", carol.Note)
}

func TestSplitFare_NoAttendees(t *testing.T) {
	// Nobody attended: every amount is zero and no division by zero occurs.
	trip := tripFixture(42.50, map[string]bool{})

	shares := domain.SplitFare(trip)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.Zero(t, s.Paid)
		assert.Zero(t, s.Owed)
		assert.Zero(t, s.Balance)
	}
}

func TestSplitFare_SharesSumToFare(t *testing.T) {
	// 10.00 across three attendees does not divide evenly in decimal;
	// the unrounded shares must still sum back to the fare.
	trip := tripFixture(10.00, map[string]bool{"alice": true, "bob": true, "carol": true})

	shares := domain.SplitFare(trip)

	var sum float64
	for _, s := range shares {
		sum += s.Owed
	}
	assert.InDelta(t, trip.Fare, sum, 1e-9)
}

func TestSplitFare_PayerOnlyAttendee(t *testing.T) {
	// The payer rode alone: they owe their own full fare and nobody owes them.
	trip := tripFixture(12.00, map[string]bool{"alice": true})

	shares := domain.SplitFare(trip)

	alice := shareFor(t, shares, "alice")
	assert.InDelta(t, 12.00, alice.Owed, 1e-9)
	assert.InDelta(t, 0.0, alice.Balance, 1e-9)
}

func TestSplitFare_ZeroFare(t *testing.T) {
	trip := tripFixture(0, map[string]bool{"alice": true, "bob": true})

	shares := domain.SplitFare(trip)

	for _, s := range shares {
		assert.Zero(t, s.Owed)
		assert.Zero(t, s.Balance)
	}
}

func TestSplitFare_NoParticipants(t *testing.T) {
	trip := domain.Trip{Fare: 20}

	assert.Empty(t, domain.SplitFare(trip))
}
