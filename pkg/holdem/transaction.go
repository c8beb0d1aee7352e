package holdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the review state of a transaction
type TransactionStatus string

// transaction status constants
const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionRejected TransactionStatus = "rejected"
)

// Transaction records a single chip movement for a player.
// A negative amount is a debit, a positive amount is a credit.
// Only the status and approval fields may change after creation.
type Transaction struct {
	ID         string            `json:"id"`
	PlayerID   int64             `json:"playerId"`
	Amount     int               `json:"amount"`
	Created    time.Time         `json:"created"`
	Status     TransactionStatus `json:"status"`
	ApprovedBy *int64            `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time        `json:"approvedAt,omitempty"`
}

// NewTransaction returns a pending transaction for the player
func NewTransaction(playerID int64, amount int) (*Transaction, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("invalid player id: %d", playerID)
	}

	if amount == 0 {
		return nil, fmt.Errorf("transaction amount cannot be zero")
	}

	return &Transaction{
		ID:       uuid.New().String(),
		PlayerID: playerID,
		Amount:   amount,
		Created:  time.Now(),
		Status:   TransactionPending,
	}, nil
}

// IsValidTransactionStatus returns true for one of the three known statuses
func IsValidTransactionStatus(status TransactionStatus) bool {
	switch status {
	case TransactionPending, TransactionApproved, TransactionRejected:
		return true
	}

	return false
}

// Approve marks a pending transaction approved by the admin
func (t *Transaction) Approve(adminID int64) error {
	return t.decide(TransactionApproved, adminID)
}

// Reject marks a pending transaction rejected by the admin
func (t *Transaction) Reject(adminID int64) error {
	return t.decide(TransactionRejected, adminID)
}

func (t *Transaction) decide(status TransactionStatus, adminID int64) error {
	if t.Status != TransactionPending {
		return ErrTransactionDecided
	}

	now := time.Now()
	t.Status = status
	t.ApprovedBy = &adminID
	t.ApprovedAt = &now

	return nil
}
