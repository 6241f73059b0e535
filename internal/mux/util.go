package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeTableError maps engine rejections onto HTTP status codes. All of
// them are client mistakes except whatever falls through.
func writeTableError(w http.ResponseWriter, err error) {
	var illegal *table.IllegalActionError
	var userErr table.UserError

	switch {
	case errors.Is(err, table.ErrUnknownPlayer):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.As(err, &illegal),
		errors.Is(err, table.ErrNotPlayersTurn),
		errors.Is(err, table.ErrHandInProgress),
		errors.Is(err, table.ErrNoHandInProgress),
		errors.Is(err, table.ErrInsufficientPlayers),
		errors.Is(err, table.ErrSeatUnavailable):
		writeJSONError(w, http.StatusConflict, err)
	case errors.As(err, &userErr):
		writeJSONError(w, http.StatusBadRequest, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
