// Package chips tracks chip balances and the pot for a hand of poker.
package chips

import (
	"errors"
	"fmt"
)

// ErrInsufficientFunds is an error when a strict debit exceeds the balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidAmount is an error when a credit or debit amount is not positive
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Ledger is a non-negative chip balance
type Ledger struct {
	amount int
}

// NewLedger returns a ledger seeded with the given amount
func NewLedger(amount int) (*Ledger, error) {
	if amount < 0 {
		return nil, fmt.Errorf("ledger cannot start with a negative amount: %d", amount)
	}

	return &Ledger{amount: amount}, nil
}

// Amount returns the current balance
func (l *Ledger) Amount() int {
	return l.amount
}

// Credit adds the amount to the balance
func (l *Ledger) Credit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	l.amount += amount
	return nil
}

// Debit removes the amount from the balance.
// The debit is strict: if the amount exceeds the balance, ErrInsufficientFunds
// is returned and the balance is left untouched.
func (l *Ledger) Debit(amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > l.amount {
		return ErrInsufficientFunds
	}

	l.amount -= amount
	return nil
}

// DebitUpTo removes up to the amount from the balance, clamping to what is
// available, and returns what was actually taken. This is the betting path:
// a player who cannot cover a bet goes all-in with their remaining chips.
func (l *Ledger) DebitUpTo(amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	if amount > l.amount {
		amount = l.amount
	}

	l.amount -= amount
	return amount, nil
}
