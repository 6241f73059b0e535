package room

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Andres-Briones/NablaPoker/internal/rng"
	"github.com/Andres-Briones/NablaPoker/pkg/evaluator"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
	"github.com/Andres-Briones/NablaPoker/pkg/table"
)

// RegistryOptions configures room creation
type RegistryOptions struct {
	// HistoryPath is the directory hand-history files are written to.
	// Empty disables persistence.
	HistoryPath string

	// SiteName and NetworkName identify this deployment in hand histories
	SiteName    string
	NetworkName string

	// Version is the server version recorded in hand histories
	Version string

	// Defaults fills in table options the creator leaves at zero
	Defaults table.Options
}

// Registry keeps track of the active rooms
type Registry struct {
	logger  logrus.FieldLogger
	options RegistryOptions

	lock        sync.RWMutex
	rooms       map[string]*Room
	nextTableID int64
}

// NewRegistry returns an empty room registry
func NewRegistry(logger logrus.FieldLogger, options RegistryOptions) *Registry {
	return &Registry{
		logger:  logger,
		options: options,
		rooms:   make(map[string]*Room),
	}
}

// CreateRoom creates a room with a fresh table. Zero values in opts
// fall back to the registry defaults.
func (g *Registry) CreateRoom(opts table.Options) (*Room, error) {
	defaults := g.options.Defaults
	if opts.Name == "" {
		opts.Name = defaults.Name
	}
	if opts.Size == 0 {
		opts.Size = defaults.Size
	}
	if opts.SmallBlind == 0 {
		opts.SmallBlind = defaults.SmallBlind
	}
	if opts.BigBlind == 0 {
		opts.BigBlind = defaults.BigBlind
	}

	g.lock.Lock()
	g.nextTableID++
	opts.ID = g.nextTableID
	g.lock.Unlock()

	session := handhistory.NewSession(g.options.SiteName, g.options.NetworkName, g.options.Version)
	tbl, err := table.New(g.logger, session, evaluator.New(), rng.Crypto{}, opts)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	room := newRoom(id, g.logger, tbl, g.options.HistoryPath)

	g.lock.Lock()
	g.rooms[id] = room
	g.lock.Unlock()

	g.logger.WithFields(logrus.Fields{
		"room": id,
		"name": opts.Name,
	}).Info("room created")

	return room, nil
}

// Room returns the room by its identifier
func (g *Registry) Room(id string) (*Room, bool) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	room, ok := g.rooms[id]
	return room, ok
}

// Rooms returns all active rooms
func (g *Registry) Rooms() []*Room {
	g.lock.RLock()
	defer g.lock.RUnlock()

	rooms := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		rooms = append(rooms, room)
	}

	return rooms
}

// RemoveRoom closes a room and drops it from the registry
func (g *Registry) RemoveRoom(id string) {
	g.lock.Lock()
	room, ok := g.rooms[id]
	delete(g.rooms, id)
	g.lock.Unlock()

	if !ok {
		return
	}

	for _, client := range room.Clients() {
		select {
		case client.Close <- "room closed":
		default:
		}
	}

	g.logger.WithField("room", id).Info("room removed")
}
