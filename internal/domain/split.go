package domain

import "fmt"

// Share is one participant's line in a trip's fare reconciliation.
// Paid and Balance are only non-zero for the attending payer; Owed is the
// participant's share of the fare. Amounts are kept unrounded — the
// two-decimal formatting appears only in Note, which is ready for display.
type Share struct {
	Username string
	Name     string
	Attended bool
	Paid     float64
	Owed     float64
	Balance  float64 // Paid - Owed; positive means others owe this participant
	Note     string
}

// SplitFare apportions trip.Fare evenly among attending participants and
// returns one Share per participant, in participant order.
//
// It is a pure function: no I/O, no shared state, safe to call concurrently.
// With zero attendees every share is zero — the division is skipped entirely,
// so a fare on a trip nobody attended never divides by zero.
func SplitFare(trip Trip) []Share {
	attendees := 0
	for _, p := range trip.Participants {
		if p.Attended {
			attendees++
		}
	}

	var costPerPerson float64
	if attendees > 0 {
		costPerPerson = trip.Fare / float64(attendees)
	}

	shares := make([]Share, 0, len(trip.Participants))
	for _, p := range trip.Participants {
		s := Share{Username: p.Username, Name: p.Name, Attended: p.Attended}
		switch {
		case !p.Attended:
			s.Note = fmt.Sprintf("%s: $0.00 (did not attend)", p.Name)
		case p.Username == trip.Payer.Username:
			s.Paid = trip.Fare
			s.Owed = costPerPerson
			s.Balance = trip.Fare - costPerPerson
			s.Note = fmt.Sprintf("%s: paid $%.2f, owes $%.2f (balance: +$%.2f)",
				p.Name, s.Paid, s.Owed, s.Balance)
		default:
			s.Owed = costPerPerson
			s.Balance = -costPerPerson
			s.Note = fmt.Sprintf("%s: owes $%.2f to %s", p.Name, costPerPerson, trip.Payer.Name)
		}
		shares = append(shares, s)
	}
	return shares
}
