// Package table persists players and the chip transactions produced by hands.
package table

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"rivercard-server/pkg/db"
)

const playerColumns = `
players.id,
players.display_name,
players.credit,
players.created,
players.updated`

const pqCheckViolationErrorCode pq.ErrorCode = "23514"

// ErrInsufficientCredit happens if a debit would take a player's credit negative
var ErrInsufficientCredit = errors.New("player does not have enough credit")

// Player is a record in the `players` table
type Player struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"displayName"`
	Credit      int       `json:"credit"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// Store provides access to the players and transactions tables.
// The database handle is injected; the store owns no global state.
type Store struct {
	db *sql.DB
}

// NewStore returns a store backed by the database handle
func NewStore(dbh *sql.DB) *Store {
	return &Store{db: dbh}
}

func getPlayerByRow(row db.Scanner) (*Player, error) {
	var player Player
	if err := row.Scan(&player.ID, &player.DisplayName, &player.Credit, &player.Created, &player.Updated); err != nil {
		return nil, err
	}

	return &player, nil
}

// CreatePlayer creates a player with a starting credit
func (s *Store) CreatePlayer(ctx context.Context, displayName string, credit int) (*Player, error) {
	const query = `
INSERT INTO players (display_name, credit)
VALUES ($1, $2)
RETURNING ` + playerColumns

	row := s.db.QueryRowContext(ctx, query, displayName, credit)
	return getPlayerByRow(row)
}

// GetPlayerByID returns player based on the ID
func (s *Store) GetPlayerByID(ctx context.Context, id int64) (*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1`

	row := s.db.QueryRowContext(ctx, query, id)
	return getPlayerByRow(row)
}

// GetPlayersByIDs returns the players for the given IDs
func (s *Store) GetPlayersByIDs(ctx context.Context, ids []int64) ([]*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = ANY($1)
ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*Player, 0, len(ids))
	for rows.Next() {
		player, err := getPlayerByRow(rows)
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, rows.Err()
}

// GetPlayers returns a page of players
func (s *Store) GetPlayers(ctx context.Context, start int64, rows int) ([]*Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
ORDER BY id
OFFSET $1
LIMIT $2`

	res, err := s.db.QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	players := make([]*Player, 0, rows)
	for res.Next() {
		player, err := getPlayerByRow(res)
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	return players, res.Err()
}

// AdjustCredit applies a signed delta to the player's persisted credit
func (s *Store) AdjustCredit(ctx context.Context, playerID int64, delta int) error {
	return adjustCredit(ctx, s.db, playerID, delta)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func adjustCredit(ctx context.Context, ex execer, playerID int64, delta int) error {
	const query = `
UPDATE players
SET credit = credit + $1,
    updated = (NOW() AT TIME ZONE 'utc')
WHERE id = $2`

	res, err := ex.ExecContext(ctx, query, delta, playerID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolationErrorCode {
			return ErrInsufficientCredit
		}

		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}
