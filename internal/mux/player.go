package mux

import (
	"net/http"
	"strconv"
	"strings"

	gmux "github.com/gorilla/mux"

	"rivercard-server/internal/config"
)

func (m *Mux) postPlayer() http.HandlerFunc {
	type request struct {
		DisplayName string `json:"displayName"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if !decodeRequest(w, r, &req) {
			return
		}

		displayName := strings.TrimSpace(req.DisplayName)
		if displayName == "" {
			writeJSONError(w, http.StatusBadRequest, errDisplayNameRequired)
			return
		}

		player, err := m.store.CreatePlayer(r.Context(), displayName, config.Instance().Game.StartingCredit)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, player)
	}
}

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		players, err := m.store.GetPlayers(r.Context(), opts.Start, opts.Rows)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, players)
	}
}

func (m *Mux) getPlayerID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(gmux.Vars(r)["id"], 10, 64)

		player, err := m.store.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, player)
	}
}

func (m *Mux) getPlayerIDTransactions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(gmux.Vars(r)["id"], 10, 64)

		opts, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		records, err := m.store.GetTransactionsByPlayerID(r.Context(), id, opts.Start, opts.Rows)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}
