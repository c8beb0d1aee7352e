package chips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLedger(t *testing.T) {
	a := assert.New(t)

	ledger, err := NewLedger(50)
	a.NoError(err)
	a.Equal(50, ledger.Amount())

	ledger, err = NewLedger(0)
	a.NoError(err)
	a.Equal(0, ledger.Amount())

	ledger, err = NewLedger(-1)
	a.Nil(ledger)
	a.EqualError(err, "ledger cannot start with a negative amount: -1")
}

func TestLedger_CreditAndDebit(t *testing.T) {
	a := assert.New(t)

	ledger, _ := NewLedger(50)
	a.NoError(ledger.Credit(20))
	a.Equal(70, ledger.Amount())

	a.NoError(ledger.Debit(40))
	a.Equal(30, ledger.Amount())

	// a failed debit leaves the balance unchanged
	a.Equal(ErrInsufficientFunds, ledger.Debit(40))
	a.Equal(30, ledger.Amount())

	a.Equal(ErrInvalidAmount, ledger.Credit(0))
	a.Equal(ErrInvalidAmount, ledger.Credit(-5))
	a.Equal(ErrInvalidAmount, ledger.Debit(0))
	a.Equal(ErrInvalidAmount, ledger.Debit(-5))
	a.Equal(30, ledger.Amount())
}

func TestLedger_DebitUpTo(t *testing.T) {
	a := assert.New(t)

	ledger, _ := NewLedger(30)

	taken, err := ledger.DebitUpTo(20)
	a.NoError(err)
	a.Equal(20, taken)
	a.Equal(10, ledger.Amount())

	// clamps to the available balance
	taken, err = ledger.DebitUpTo(40)
	a.NoError(err)
	a.Equal(10, taken)
	a.Equal(0, ledger.Amount())

	taken, err = ledger.DebitUpTo(40)
	a.NoError(err)
	a.Equal(0, taken)

	_, err = ledger.DebitUpTo(0)
	a.Equal(ErrInvalidAmount, err)
}
