package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"github.com/Andres-Briones/NablaPoker/pkg/room"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry

	// store for testing purposes
	roomRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
	}

	{
		rr := this.Router.PathPrefix("/room/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		rr.Use(this.roomMiddleware)
		this.roomRouter = rr

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomUUID())
		rr.Methods(http.MethodPost).Path("/join").Handler(this.postRoomUUIDJoin())
		rr.Methods(http.MethodPost).Path("/leave").Handler(this.postRoomUUIDLeave())
		rr.Methods(http.MethodPost).Path("/start").Handler(this.postRoomUUIDStart())
		rr.Methods(http.MethodPost).Path("/action").Handler(this.postRoomUUIDAction())
		rr.Methods(http.MethodPost).Path("/chips").Handler(this.postRoomUUIDChips())
		rr.Methods(http.MethodGet).Path("/state").Handler(this.getRoomUUIDState())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomUUIDWS())
	}

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uuid := gmux.Vars(r)["uuid"]
		rm, ok := m.registry.Room(uuid)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, rm)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
