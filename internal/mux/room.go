package mux

import (
	"net/http"
	"strconv"

	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
	"github.com/Andres-Briones/NablaPoker/pkg/room"
	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

type roomResponse struct {
	RoomID      string `json:"roomId"`
	Name        string `json:"name"`
	PlayerCount int    `json:"playerCount"`
	HandActive  bool   `json:"handActive"`
}

func newRoomResponse(rm *room.Room) roomResponse {
	return roomResponse{
		RoomID:      rm.ID,
		Name:        rm.Table().Name(),
		PlayerCount: rm.Table().PlayerCount(),
		HandActive:  rm.Table().HandInProgress(),
	}
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms := m.registry.Rooms()
		payload := make([]roomResponse, 0, len(rooms))
		for _, rm := range rooms {
			payload = append(payload, newRoomResponse(rm))
		}

		writeJSON(w, http.StatusOK, payload)
	}
}

func (m *Mux) postRoom() http.HandlerFunc {
	type payload struct {
		Name       string `json:"name"`
		Size       int    `json:"size"`
		SmallBlind int    `json:"smallBlind"`
		BigBlind   int    `json:"bigBlind"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		rm, err := m.registry.CreateRoom(table.Options{
			Name:       p.Name,
			Size:       p.Size,
			SmallBlind: p.SmallBlind,
			BigBlind:   p.BigBlind,
		})
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusCreated, newRoomResponse(rm))
	}
}

func (m *Mux) getRoomUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)
		writeJSON(w, http.StatusOK, newRoomResponse(rm))
	}
}

func (m *Mux) postRoomUUIDJoin() http.HandlerFunc {
	type payload struct {
		Name  string `json:"name"`
		BuyIn int    `json:"buyIn"`
	}

	type response struct {
		PlayerID int64 `json:"playerId"`
		Seat     int   `json:"seat"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if p.Name == "" {
			writeJSONError(w, http.StatusBadRequest, table.UserError("a player name is required"))
			return
		}

		if p.BuyIn <= 0 {
			writeJSONError(w, http.StatusBadRequest, table.UserError("the buy-in must be positive"))
			return
		}

		player, err := rm.Join(p.Name, p.BuyIn)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, response{
			PlayerID: player.ID,
			Seat:     player.Seat,
		})
	}
}

func (m *Mux) postRoomUUIDLeave() http.HandlerFunc {
	type payload struct {
		PlayerID int64 `json:"playerId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if err := rm.Leave(p.PlayerID); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postRoomUUIDStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		if err := rm.StartGame(); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postRoomUUIDAction() http.HandlerFunc {
	type payload struct {
		PlayerID int64  `json:"playerId"`
		Action   string `json:"action"`
		Amount   int    `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		kind, err := handhistory.KindFromString(p.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if err := rm.Act(p.PlayerID, kind, p.Amount); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postRoomUUIDChips() http.HandlerFunc {
	type payload struct {
		PlayerID int64 `json:"playerId"`
		Amount   int   `json:"amount"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		var p payload
		if !decodeRequest(w, r, &p) {
			return
		}

		if err := rm.AddChips(p.PlayerID, p.Amount); err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) getRoomUUIDState() http.HandlerFunc {
	type response struct {
		Info  *table.TableInfo `json:"info"`
		State *table.GameState `json:"state"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		playerID, err := strconv.ParseInt(r.FormValue("playerId"), 10, 64)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		info, state, err := rm.State(playerID)
		if err != nil {
			writeTableError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response{Info: info, State: state})
	}
}

type okResponse struct {
	Status string `json:"status"`
}

func statusOK() okResponse {
	return okResponse{Status: "OK"}
}
