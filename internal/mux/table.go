package mux

import (
	"context"
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"rivercard-server/internal/config"
	"rivercard-server/internal/rng"
	"rivercard-server/pkg/deck"
	"rivercard-server/pkg/holdem"
	"rivercard-server/pkg/room"
)

// request validation errors
var (
	errDisplayNameRequired = errors.New("displayName is required")
	errInvalidSeatCount    = errors.New("seats must be between 2 and 10")
	errTableNotFound       = errors.New("table not found")
	errNoHandsPlayed       = errors.New("no hands have been played at this table")
)

type ctxKey int

const ctxRoomKey ctxKey = iota

// tableMiddleware resolves {uuid} into a room and stores it on the context
func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tableRoom := m.floor.Room(gmux.Vars(r)["uuid"])
		if tableRoom == nil {
			writeJSONError(w, http.StatusNotFound, errTableNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), ctxRoomKey, tableRoom)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func roomFromContext(ctx context.Context) *room.Room {
	return ctx.Value(ctxRoomKey).(*room.Room)
}

type tableResponse struct {
	UUID        string              `json:"uuid"`
	Name        string              `json:"name"`
	Seats       int                 `json:"seats"`
	Players     []holdem.PlayerInfo `json:"players"`
	HandsPlayed int                 `json:"handsPlayed"`
}

func newTableResponse(r *room.Room) tableResponse {
	return tableResponse{
		UUID:        r.UUID,
		Name:        r.Name,
		Seats:       r.Seats,
		Players:     r.Players(),
		HandsPlayed: r.HandsPlayed(),
	}
}

func (m *Mux) postTable() http.HandlerFunc {
	type request struct {
		Name  string `json:"name"`
		Seats int    `json:"seats"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeRequest(w, r, &req) {
			return
		}

		if req.Seats == 0 {
			req.Seats = 10
		}

		if req.Seats < 2 || req.Seats > 10 {
			writeJSONError(w, http.StatusBadRequest, errInvalidSeatCount)
			return
		}

		tableRoom := m.floor.CreateRoom(req.Name, req.Seats)
		writeJSON(w, http.StatusCreated, newTableResponse(tableRoom))
	}
}

func (m *Mux) getTableUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newTableResponse(roomFromContext(r.Context())))
	}
}

func (m *Mux) postTableUUIDSeat() http.HandlerFunc {
	type request struct {
		PlayerID int64 `json:"playerId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeRequest(w, r, &req) {
			return
		}

		player, err := m.store.GetPlayerByID(r.Context(), req.PlayerID)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		tableRoom := roomFromContext(r.Context())
		err = tableRoom.Seat(holdem.PlayerInfo{
			ID:     player.ID,
			Name:   player.DisplayName,
			Credit: player.Credit,
		})
		if err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		writeJSON(w, http.StatusOK, newTableResponse(tableRoom))
	}
}

type playerResult struct {
	PlayerID int64    `json:"playerId"`
	Name     string   `json:"name"`
	Balance  int      `json:"balance"`
	Status   string   `json:"status"`
	Cards    []string `json:"cards,omitempty"`
	Ranking  string   `json:"ranking,omitempty"`
}

type playResponse struct {
	Pot          int                   `json:"pot"`
	Community    []string              `json:"community"`
	Players      []playerResult        `json:"players"`
	Winners      []int64               `json:"winners"`
	Transactions []*holdem.Transaction `json:"transactions"`
}

func displayNames(cards deck.Hand) []string {
	names := make([]string, len(cards))
	for i, card := range cards {
		names[i] = card.DisplayName()
	}

	return names
}

func (m *Mux) postTableUUIDPlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.Instance()

		tableRoom := roomFromContext(r.Context())
		hand, err := tableRoom.PlayHand(holdem.Options{
			SmallBlind: cfg.Game.SmallBlind,
			BigBlind:   cfg.Game.BigBlind,
			DeckCount:  cfg.Game.DeckCount,
			Seed:       rng.Crypto{}.Int63(),
		})
		if err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		if err := m.store.SaveHand(r.Context(), tableRoom.UUID, hand); err != nil {
			logrus.WithError(err).Error("could not save hand")
			writeJSONError(w, http.StatusInternalServerError, nil)
			return
		}

		writeJSON(w, http.StatusOK, newPlayResponse(hand))
	}
}

func (m *Mux) getTableUUIDHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hand := roomFromContext(r.Context()).LastHand()
		if hand == nil {
			writeJSONError(w, http.StatusNotFound, errNoHandsPlayed)
			return
		}

		writeJSON(w, http.StatusOK, newPlayResponse(hand))
	}
}

func newPlayResponse(hand *holdem.Hand) playResponse {
	// the pot is drained at showdown, so reconstruct it from the payouts
	pot := 0
	for _, tx := range hand.Transactions() {
		if tx.Amount > 0 {
			pot += tx.Amount
		}
	}

	winners := make([]int64, 0, len(hand.Winners()))
	for _, winner := range hand.Winners() {
		winners = append(winners, winner.PlayerID)
	}

	players := make([]playerResult, 0, len(hand.Players()))
	for _, player := range hand.Players() {
		result := playerResult{
			PlayerID: player.PlayerID,
			Name:     player.Name,
			Balance:  player.Balance(),
			Status:   string(player.Status()),
			Cards:    displayNames(player.Cards()),
		}

		if ranking := hand.Rankings()[player.PlayerID]; ranking != nil {
			result.Ranking = ranking.String()
		}

		players = append(players, result)
	}

	return playResponse{
		Pot:          pot,
		Community:    displayNames(hand.Community()),
		Players:      players,
		Winners:      winners,
		Transactions: hand.Transactions(),
	}
}
