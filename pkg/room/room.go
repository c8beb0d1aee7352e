// Package room tracks the card room's tables and serializes play on them.
package room

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"rivercard-server/pkg/holdem"
)

// errors a room can return
var (
	ErrPlayerAlreadySeated = errors.New("player is already seated at the table")
	ErrRoomFull            = errors.New("no seats are available")
	ErrNoPlayers           = errors.New("no players are seated")
)

// Room is a single table players can join and play hands at.
// All methods are safe for concurrent use; a hand in progress blocks
// other hands and seat changes at the same table.
type Room struct {
	UUID  string
	Name  string
	Seats int

	logger logrus.FieldLogger

	mu          sync.Mutex
	players     []holdem.PlayerInfo
	lastHand    *holdem.Hand
	handsPlayed int
}

// NewRoom returns a room with the given number of seats
func NewRoom(logger logrus.FieldLogger, uuid, name string, seats int) *Room {
	return &Room{
		UUID:   uuid,
		Name:   name,
		Seats:  seats,
		logger: logger.WithField("table", uuid),
	}
}

// Seat adds the player to the table
func (r *Room) Seat(player holdem.PlayerInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, seated := range r.players {
		if seated.ID == player.ID {
			return ErrPlayerAlreadySeated
		}
	}

	if len(r.players) >= r.Seats {
		return ErrRoomFull
	}

	r.players = append(r.players, player)
	r.logger.WithFields(logrus.Fields{
		"player": player.ID,
		"seated": len(r.players),
	}).Info("player seated")

	return nil
}

// Players returns the seated players in seating order
func (r *Room) Players() []holdem.PlayerInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	players := make([]holdem.PlayerInfo, len(r.players))
	copy(players, r.players)
	return players
}

// PlayHand runs a single hand to completion with the seated players.
// The players' cached credits are updated from their final balances so
// the next hand starts from where this one ended.
func (r *Room) PlayHand(opts holdem.Options) (*holdem.Hand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) == 0 {
		return nil, ErrNoPlayers
	}

	hand, err := holdem.NewHand(r.logger, r.players, opts)
	if err != nil {
		return nil, err
	}

	if err := hand.Run(); err != nil {
		return nil, err
	}

	for i, player := range r.players {
		seated, ok := hand.Player(player.ID)
		if !ok {
			continue
		}

		r.players[i].Credit = seated.Balance()
	}

	r.lastHand = hand
	r.handsPlayed++
	r.logger.WithFields(logrus.Fields{
		"winners":     len(hand.Winners()),
		"handsPlayed": r.handsPlayed,
	}).Info("hand played")

	return hand, nil
}

// LastHand returns the most recently completed hand, or nil
func (r *Room) LastHand() *holdem.Hand {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lastHand
}

// HandsPlayed returns how many hands completed at this table
func (r *Room) HandsPlayed() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.handsPlayed
}
