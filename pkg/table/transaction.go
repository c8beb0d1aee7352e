package table

import (
	"context"
	"errors"
	"time"

	"rivercard-server/pkg/db"
	"rivercard-server/pkg/holdem"
)

// ErrHandNotFinished happens if a hand is persisted before it reached showdown
var ErrHandNotFinished = errors.New("hand has not finished")

const transactionColumns = `
transactions.id,
transactions.player_id,
transactions.table_uuid,
transactions.amount,
transactions.status,
transactions.approved_by,
transactions.approved_at,
transactions.created`

// TransactionRecord is a record in the `transactions` table
type TransactionRecord struct {
	ID         string                   `json:"id"`
	PlayerID   int64                    `json:"playerId"`
	TableUUID  string                   `json:"tableUuid"`
	Amount     int                      `json:"amount"`
	Status     holdem.TransactionStatus `json:"status"`
	ApprovedBy *int64                   `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time               `json:"approvedAt,omitempty"`
	Created    time.Time                `json:"created"`
}

func getTransactionByRow(row db.Scanner) (*TransactionRecord, error) {
	var record TransactionRecord
	err := row.Scan(&record.ID, &record.PlayerID, &record.TableUUID, &record.Amount,
		&record.Status, &record.ApprovedBy, &record.ApprovedAt, &record.Created)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// SaveHand persists a finished hand in a single database transaction.
// The chip transactions are inserted and each player's credit is adjusted
// by the net of their wagers and winnings. If any player's credit would go
// negative, the whole transaction rolls back.
func (s *Store) SaveHand(ctx context.Context, tableUUID string, hand *holdem.Hand) error {
	if hand.Phase() != holdem.PhaseFinished {
		return ErrHandNotFinished
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // nolint:errcheck

	const insert = `
INSERT INTO transactions (id, player_id, table_uuid, amount, status, created)
VALUES ($1, $2, $3, $4, $5, $6)`

	deltas := make(map[int64]int)
	for _, record := range hand.Transactions() {
		_, err := tx.ExecContext(ctx, insert, record.ID, record.PlayerID, tableUUID,
			record.Amount, record.Status, record.Created)
		if err != nil {
			return err
		}

		deltas[record.PlayerID] += record.Amount
	}

	for playerID, delta := range deltas {
		if delta == 0 {
			continue
		}

		if err := adjustCredit(ctx, tx, playerID, delta); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetTransactionsByPlayerID returns a page of the player's transactions,
// most recent first
func (s *Store) GetTransactionsByPlayerID(ctx context.Context, playerID int64, start int64, rows int) ([]*TransactionRecord, error) {
	const query = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE player_id = $1
ORDER BY created DESC, id
OFFSET $2
LIMIT $3`

	res, err := s.db.QueryContext(ctx, query, playerID, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	records := make([]*TransactionRecord, 0, rows)
	for res.Next() {
		record, err := getTransactionByRow(res)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, res.Err()
}
