package mux

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

const maxRows = 100

type errorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("could not encode response")
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	message := http.StatusText(statusCode)
	if err != nil {
		message = err.Error()
	}

	writeJSON(w, statusCode, errorResponse{
		Error:      message,
		StatusCode: statusCode,
	})
}

// writeMaybeNotFoundError translates sql.ErrNoRows into a 404 and
// hides everything else behind a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	logrus.WithError(err).Error("database error")
	writeJSONError(w, http.StatusInternalServerError, nil)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, errors.New("could not decode request"))
		return false
	}

	return true
}

type paginationOptions struct {
	Start int64
	Rows  int
}

func parsePaginationOptions(r *http.Request) (paginationOptions, error) {
	opts := paginationOptions{
		Start: 0,
		Rows:  maxRows,
	}

	if value := r.URL.Query().Get("start"); value != "" {
		start, err := strconv.ParseInt(value, 10, 64)
		if err != nil || start < 0 {
			return opts, errors.New("invalid start")
		}

		opts.Start = start
	}

	if value := r.URL.Query().Get("rows"); value != "" {
		rows, err := strconv.Atoi(value)
		if err != nil || rows < 1 || rows > maxRows {
			return opts, errors.New("invalid rows")
		}

		opts.Rows = rows
	}

	return opts, nil
}
