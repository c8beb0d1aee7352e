package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPot(t *testing.T) {
	a := assert.New(t)

	pot := NewPot()
	a.Equal(0, pot.Amount())

	a.NoError(pot.Add(10))
	a.NoError(pot.Add(20))
	a.Equal(30, pot.Amount())

	a.Equal(ErrInvalidAmount, pot.Add(0))
	a.Equal(30, pot.Amount())

	a.Equal(30, pot.Payout())
	a.Equal(0, pot.Amount())
	a.Equal(0, pot.Payout())
}
