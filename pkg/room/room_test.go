package room

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivercard-server/pkg/holdem"
)

func TestRoom_Seat(t *testing.T) {
	a := assert.New(t)

	r := NewRoom(logrus.StandardLogger(), "uuid", "test table", 2)
	a.NoError(r.Seat(holdem.PlayerInfo{ID: 1, Name: "alice", Credit: 1000}))
	a.Equal(ErrPlayerAlreadySeated, r.Seat(holdem.PlayerInfo{ID: 1, Name: "alice", Credit: 1000}))
	a.NoError(r.Seat(holdem.PlayerInfo{ID: 2, Name: "bob", Credit: 1000}))
	a.Equal(ErrRoomFull, r.Seat(holdem.PlayerInfo{ID: 3, Name: "carol", Credit: 1000}))

	players := r.Players()
	a.Len(players, 2)
	a.Equal(int64(1), players[0].ID)
	a.Equal(int64(2), players[1].ID)
}

func TestRoom_PlayHand(t *testing.T) {
	a := assert.New(t)

	r := NewRoom(logrus.StandardLogger(), "uuid", "test table", 8)

	_, err := r.PlayHand(holdem.DefaultOptions())
	a.Equal(ErrNoPlayers, err)

	a.NoError(r.Seat(holdem.PlayerInfo{ID: 1, Name: "alice", Credit: 1000}))
	a.NoError(r.Seat(holdem.PlayerInfo{ID: 2, Name: "bob", Credit: 1000}))
	a.NoError(r.Seat(holdem.PlayerInfo{ID: 3, Name: "carol", Credit: 1000}))

	opts := holdem.DefaultOptions()
	opts.Seed = 42

	hand, err := r.PlayHand(opts)
	require.NoError(t, err)
	a.Equal(holdem.PhaseFinished, hand.Phase())
	a.Same(hand, r.LastHand())
	a.Equal(1, r.HandsPlayed())

	// the cached credits match the hand's final balances
	total := 0
	for _, player := range r.Players() {
		seated, ok := hand.Player(player.ID)
		require.True(t, ok)
		a.Equal(seated.Balance(), player.Credit)
		total += player.Credit
	}
	a.Equal(3000, total)
}

func TestFloor(t *testing.T) {
	a := assert.New(t)

	f := NewFloor(logrus.StandardLogger())
	r := f.CreateRoom("high stakes", 8)
	a.NotEmpty(r.UUID)
	a.Equal("high stakes", r.Name)
	a.Same(r, f.Room(r.UUID))
	a.Nil(f.Room("not-a-table"))

	unnamed := f.CreateRoom("", 4)
	a.NotEmpty(unnamed.Name)
}
