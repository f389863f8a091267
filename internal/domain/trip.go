package domain

// DateLayout is the wire and storage format for trip dates.
const DateLayout = "2006-01-02"

// Direction distinguishes the two legs possible per date.
type Direction string

const (
	DirectionGoing     Direction = "going"
	DirectionReturning Direction = "returning"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionGoing || d == DirectionReturning
}

// PayerRef identifies the participant who fronted the fare.
// It is a snapshot taken when the trip is saved, not a live reference into
// the user directory — renaming a user later does not rewrite old trips.
type PayerRef struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Participant is one invited rider on a trip. Only participants with
// Attended set share the fare.
type Participant struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Attended bool   `json:"attended"`
}

// Trip represents one recorded rideshare leg (going or returning) with a
// fare and participant list. A trip is the top-level aggregate of the ledger.
// Driver is a display name, not a foreign key. The payer must appear among
// the participants; the trip service enforces that before saving.
type Trip struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Direction    Direction     `json:"direction"`
	Driver       string        `json:"driver,omitempty"`
	Fare         float64       `json:"fare"`
	Payer        PayerRef      `json:"payer"`
	Participants []Participant `json:"participants"`
}
