package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	a := assert.New(t)

	table, err := NewTable(3)
	a.NoError(err)
	a.Len(table.Seats(), 3)
	a.False(table.IsFull())

	table, err = NewTable(1)
	a.Nil(table)
	a.EqualError(err, "table must have at least 2 seats, got 1")
}

func TestTable_SeatPlayer(t *testing.T) {
	a := assert.New(t)

	table, _ := NewTable(2)

	seat, err := table.SeatPlayer(10)
	a.NoError(err)
	a.Equal(0, seat.Position)
	a.Equal(int64(10), seat.PlayerID)
	a.True(seat.Occupied)
	a.False(table.IsFull())

	seat, err = table.SeatPlayer(20)
	a.NoError(err)
	a.Equal(1, seat.Position)
	a.True(table.IsFull())

	seat, err = table.SeatPlayer(30)
	a.Nil(seat)
	a.Equal(ErrTableFull, err)
}
