// Package mux provides the HTTP routes for the card room server.
package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"rivercard-server/pkg/room"
	"rivercard-server/pkg/table"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   *table.Store
	floor   *room.Floor
}

// NewMux returns a new HTTP mux for the card room
func NewMux(version string, store *table.Store, floor *room.Floor) *Mux {
	m := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   store,
		floor:   floor,
	}

	m.Methods(http.MethodGet).Path("/health").HandlerFunc(m.getHealth())

	m.Methods(http.MethodPost).Path("/player").HandlerFunc(m.postPlayer())
	m.Methods(http.MethodGet).Path("/player").HandlerFunc(m.getPlayer())
	m.Methods(http.MethodGet).Path("/player/{id:[0-9]+}").HandlerFunc(m.getPlayerID())
	m.Methods(http.MethodGet).Path("/player/{id:[0-9]+}/transactions").HandlerFunc(m.getPlayerIDTransactions())

	m.Methods(http.MethodPost).Path("/table").HandlerFunc(m.postTable())

	tableRouter := m.PathPrefix("/table/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	tableRouter.Use(m.tableMiddleware)
	tableRouter.Methods(http.MethodGet).Path("").HandlerFunc(m.getTableUUID())
	tableRouter.Methods(http.MethodPost).Path("/seat").HandlerFunc(m.postTableUUIDSeat())
	tableRouter.Methods(http.MethodPost).Path("/play").HandlerFunc(m.postTableUUIDPlay())
	tableRouter.Methods(http.MethodGet).Path("/hand").HandlerFunc(m.getTableUUIDHand())

	return m
}

func (m *Mux) getHealth() http.HandlerFunc {
	type response struct {
		OK      bool   `json:"ok"`
		Version string `json:"version"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, response{
			OK:      true,
			Version: m.version,
		})
	}
}
