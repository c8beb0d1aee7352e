package holdem

import "fmt"

// Seat is a numbered position at a table
type Seat struct {
	Position int   `json:"position"`
	PlayerID int64 `json:"playerId"`
	Occupied bool  `json:"occupied"`
}

// Table owns a fixed number of seats for one hand
type Table struct {
	seats []*Seat
}

// NewTable returns a table with the specified number of seats
func NewTable(seatCount int) (*Table, error) {
	if seatCount < 2 {
		return nil, fmt.Errorf("table must have at least 2 seats, got %d", seatCount)
	}

	seats := make([]*Seat, seatCount)
	for i := range seats {
		seats[i] = &Seat{Position: i}
	}

	return &Table{seats: seats}, nil
}

// SeatPlayer places the player in the first free seat
func (t *Table) SeatPlayer(playerID int64) (*Seat, error) {
	for _, seat := range t.seats {
		if !seat.Occupied {
			seat.Occupied = true
			seat.PlayerID = playerID

			return seat, nil
		}
	}

	return nil, ErrTableFull
}

// IsFull returns true if every seat is occupied
func (t *Table) IsFull() bool {
	for _, seat := range t.seats {
		if !seat.Occupied {
			return false
		}
	}

	return true
}

// Seats returns the table's seats in position order
func (t *Table) Seats() []*Seat {
	return t.seats
}
