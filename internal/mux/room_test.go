package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

func TestMux_roomLifecycle(t *testing.T) {
	a := assert.New(t)
	m := testMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	// create a room
	var created roomResponse
	assertPost(t, ts, "/room", map[string]interface{}{"name": "test game"}, &created, 201)
	a.Equal("test game", created.Name)
	a.NotEmpty(created.RoomID)

	// invalid blinds are rejected
	assertPost(t, ts, "/room", `{"smallBlind": 10, "bigBlind": 5}`, nil, 400)

	var rooms []roomResponse
	assertGet(t, ts, "/room", &rooms, 200)
	a.Len(rooms, 1)

	base := "/room/" + created.RoomID

	var info roomResponse
	assertGet(t, ts, base, &info, 200)
	a.Equal(0, info.PlayerCount)

	// seat two players
	type joinResponse struct {
		PlayerID int64 `json:"playerId"`
		Seat     int   `json:"seat"`
	}

	var alice, bob joinResponse
	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "alice", "buyIn": 100}, &alice, 201)
	a.Equal(0, alice.Seat)
	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "bob", "buyIn": 100}, &bob, 201)
	a.Equal(1, bob.Seat)

	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "", "buyIn": 100}, nil, 400)
	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "carol", "buyIn": 0}, nil, 400)

	// start a hand
	assertPost(t, ts, base+"/start", nil, nil, 200)
	assertPost(t, ts, base+"/start", nil, nil, 409)

	// chips are locked while the hand runs
	assertPost(t, ts, base+"/chips", map[string]interface{}{"playerId": alice.PlayerID, "amount": 50}, nil, 400)

	rm, ok := m.registry.Room(created.RoomID)
	a.True(ok)
	turnID, ok := rm.Table().CurrentTurnID()
	a.True(ok)

	otherID := alice.PlayerID
	if turnID == alice.PlayerID {
		otherID = bob.PlayerID
	}

	// acting out of turn is rejected
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": otherID, "action": "Fold"}, nil, 409)

	// unknown actions never reach the table
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": turnID, "action": "Levitate"}, nil, 400)

	// the dealer folds and the hand is over
	assertPost(t, ts, base+"/action", map[string]interface{}{"playerId": turnID, "action": "Fold"}, nil, 200)
	a.False(rm.Table().HandInProgress())

	// now the top-up is allowed
	assertPost(t, ts, base+"/chips", map[string]interface{}{"playerId": alice.PlayerID, "amount": 50}, nil, 200)

	// leaving frees the seat
	assertPost(t, ts, base+"/leave", map[string]interface{}{"playerId": bob.PlayerID}, nil, 200)
	assertPost(t, ts, base+"/leave", map[string]interface{}{"playerId": bob.PlayerID}, nil, 404)
}

func TestMux_getRoomUUIDState(t *testing.T) {
	a := assert.New(t)
	m := testMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	var created roomResponse
	assertPost(t, ts, "/room", map[string]interface{}{}, &created, 201)
	base := "/room/" + created.RoomID

	type joinResponse struct {
		PlayerID int64 `json:"playerId"`
	}

	var alice joinResponse
	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "alice", "buyIn": 100}, &alice, 201)
	assertPost(t, ts, base+"/join", map[string]interface{}{"name": "bob", "buyIn": 100}, nil, 201)
	assertPost(t, ts, base+"/start", nil, nil, 200)

	type stateResponse struct {
		Info  *table.TableInfo `json:"info"`
		State *table.GameState `json:"state"`
	}

	var resp stateResponse
	assertGet(t, ts, fmt.Sprintf("%s/state?playerId=%d", base, alice.PlayerID), &resp, 200)
	a.Equal("cash game", resp.Info.TableName)
	a.Equal(3, resp.State.Pot)
	a.Len(resp.State.Players, 2)

	// own cards are visible, the opponent's are not
	a.NotEqual("back", resp.State.Players[0].Cards[0])
	a.Equal("back", resp.State.Players[1].Cards[0])

	assertGet(t, ts, base+"/state?playerId=99", nil, 404)
	assertGet(t, ts, base+"/state?playerId=abc", nil, 400)
}
