package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

// Room ties one table to its connected web clients. The table guards
// its own state; the room only coordinates connections, fan-out and
// hand-history persistence.
type Room struct {
	// ID is the room identifier used in URLs
	ID string

	logger      logrus.FieldLogger
	table       *table.Table
	historyPath string

	lock         sync.RWMutex
	clients      map[*Client]bool
	nextPlayerID int64
}

func newRoom(id string, logger logrus.FieldLogger, tbl *table.Table, historyPath string) *Room {
	return &Room{
		ID:          id,
		logger:      logger.WithField("room", id),
		table:       tbl,
		historyPath: historyPath,
		clients:     make(map[*Client]bool),
	}
}

// Table returns the table played in this room
func (r *Room) Table() *table.Table {
	return r.table
}

// Join seats a new player and assigns them an identifier
func (r *Room) Join(name string, buyIn int) (*table.Player, error) {
	r.lock.Lock()
	r.nextPlayerID++
	id := r.nextPlayerID
	r.lock.Unlock()

	player, err := r.table.NewPlayer(id, name, buyIn)
	if err != nil {
		return nil, err
	}

	r.broadcast()
	return player, nil
}

// Leave removes a player from the table
func (r *Room) Leave(playerID int64) error {
	if err := r.table.RemovePlayer(playerID); err != nil {
		return err
	}

	r.persistHistory()
	r.broadcast()
	return nil
}

// StartGame deals a new hand
func (r *Room) StartGame() error {
	if err := r.table.StartNewGame(); err != nil {
		return err
	}

	r.broadcast()
	return nil
}

// Act applies a betting action for the player
func (r *Room) Act(playerID int64, kind handhistory.Kind, amount int) error {
	if err := r.table.Act(playerID, kind, amount); err != nil {
		return err
	}

	r.persistHistory()
	r.broadcast()
	return nil
}

// AddChips tops up a player's stack between hands
func (r *Room) AddChips(playerID int64, amount int) error {
	if err := r.table.AddChips(playerID, amount); err != nil {
		return err
	}

	r.broadcast()
	return nil
}

// State returns the table as seen by one player
func (r *Room) State(playerID int64) (*table.TableInfo, *table.GameState, error) {
	return r.table.GetDisplayData(playerID)
}

// AddClient attaches a websocket client and pushes the current state
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients[client] = true
	r.lock.Unlock()

	if err := r.table.SetStatus(client.PlayerID, table.StatusActive); err != nil {
		r.logger.WithError(err).WithField("player", client.PlayerID).Warn("connected client is not seated")
	}

	r.broadcast()
}

// RemoveClient detaches a websocket client. The player keeps their seat
// and their pending turn; they are only flagged as disconnected.
func (r *Room) RemoveClient(client *Client) {
	r.lock.Lock()
	delete(r.clients, client)
	r.lock.Unlock()

	if err := r.table.SetStatus(client.PlayerID, table.StatusDisconnected); err == nil {
		r.broadcast()
	}
}

// Clients returns the connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for client := range r.clients {
		clients = append(clients, client)
	}

	return clients
}

func (r *Room) receivedMessage(client *Client, msg *Payload) {
	var err error
	switch msg.Action {
	case "startGame":
		err = r.StartGame()
	default:
		var kind handhistory.Kind
		kind, err = handhistory.KindFromString(msg.Action)
		if err == nil {
			err = r.Act(client.PlayerID, kind, msg.Amount)
		}
	}

	if err != nil {
		client.Send(newErrorResponse(msg.Context, err))
	}
}

// broadcast fans the per-player state out to every connected client. A
// client with a full send buffer misses the update; the next one will
// catch them up.
func (r *Room) broadcast() {
	for _, client := range r.Clients() {
		info, state, err := r.table.GetDisplayData(client.PlayerID)
		if err != nil {
			r.logger.WithError(err).WithField("player", client.PlayerID).Error("could not build player state")
			continue
		}

		if !client.Send(&stateResponse{Key: "state", Info: info, State: state}) {
			r.logger.WithField("client", client.String()).Warn("client send buffer is full")
		}
	}
}

// persistHistory rewrites the session file once the hand is over. The
// table serializes the write against hands finishing concurrently.
func (r *Room) persistHistory() {
	if r.historyPath == "" {
		return
	}

	if err := r.table.SaveHistory(r.historyPath); err != nil {
		r.logger.WithError(err).Error("could not save hand history")
	}
}
