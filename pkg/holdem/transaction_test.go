package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	a := assert.New(t)

	tx, err := NewTransaction(1, -20)
	a.NoError(err)
	a.NotEmpty(tx.ID)
	a.Equal(int64(1), tx.PlayerID)
	a.Equal(-20, tx.Amount)
	a.Equal(TransactionPending, tx.Status)
	a.False(tx.Created.IsZero())
	a.Nil(tx.ApprovedBy)
	a.Nil(tx.ApprovedAt)

	tx, err = NewTransaction(0, 20)
	a.Nil(tx)
	a.EqualError(err, "invalid player id: 0")

	tx, err = NewTransaction(1, 0)
	a.Nil(tx)
	a.EqualError(err, "transaction amount cannot be zero")
}

func TestTransaction_ApproveAndReject(t *testing.T) {
	a := assert.New(t)

	tx, _ := NewTransaction(1, 50)
	a.NoError(tx.Approve(9))
	a.Equal(TransactionApproved, tx.Status)
	a.Equal(int64(9), *tx.ApprovedBy)
	a.NotNil(tx.ApprovedAt)

	// a decided transaction stays decided
	a.Equal(ErrTransactionDecided, tx.Reject(9))
	a.Equal(TransactionApproved, tx.Status)

	tx, _ = NewTransaction(1, 50)
	a.NoError(tx.Reject(9))
	a.Equal(TransactionRejected, tx.Status)
	a.Equal(ErrTransactionDecided, tx.Approve(9))
}

func TestIsValidTransactionStatus(t *testing.T) {
	a := assert.New(t)

	a.True(IsValidTransactionStatus(TransactionPending))
	a.True(IsValidTransactionStatus(TransactionApproved))
	a.True(IsValidTransactionStatus(TransactionRejected))
	a.False(IsValidTransactionStatus("cancelled"))
}
