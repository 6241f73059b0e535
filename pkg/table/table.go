package table

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Andres-Briones/NablaPoker/internal/rng"
	"github.com/Andres-Briones/NablaPoker/pkg/deck"
	"github.com/Andres-Briones/NablaPoker/pkg/evaluator"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// Table runs a single no-limit hold'em cash game: seating, dealing,
// betting, side pots, showdown and the hand-history record.
//
// All mutating operations take the write lock, so one logical action
// commits at a time; display reads take the read lock and always see a
// fully-applied state.
type Table struct {
	mu     sync.RWMutex
	logger logrus.FieldLogger
	random rng.Generator
	eval   evaluator.Evaluator

	id         int64
	name       string
	size       int
	smallBlind int
	bigBlind   int

	players        map[int64]*Player
	availableSeats []int // kept sorted
	activePlayers  *SeatRing
	deck           *deck.Deck
	boardCards     deck.Hand
	pot            int
	currentBet     int
	uncalledAmount int

	currentTurn *Player
	dealer      *Player
	dealerSeat  int
	bbPlayer    *Player
	aggressor   *Player

	streets        []handhistory.Street
	currentRound   *handhistory.Round
	currentHand    *handhistory.Hand
	handPlayers    []*Player // players dealt into the current hand, seat order
	handStartedAt  time.Time
	lastGameNumber int64
	logs           []string

	session *handhistory.Session
}

// Options configures a new table
type Options struct {
	ID         int64
	Name       string
	Size       int
	SmallBlind int
	BigBlind   int
}

// New returns an empty table
func New(logger logrus.FieldLogger, session *handhistory.Session, eval evaluator.Evaluator, random rng.Generator, opts Options) (*Table, error) {
	if opts.Size < 2 {
		return nil, errors.New("table size must be at least 2")
	}

	if opts.SmallBlind <= 0 || opts.BigBlind < opts.SmallBlind {
		return nil, errors.New("blinds must satisfy 0 < small blind <= big blind")
	}

	availableSeats := make([]int, opts.Size)
	for i := range availableSeats {
		availableSeats[i] = i
	}

	return &Table{
		logger:         logger.WithField("table", opts.Name),
		random:         random,
		eval:           eval,
		id:             opts.ID,
		name:           opts.Name,
		size:           opts.Size,
		smallBlind:     opts.SmallBlind,
		bigBlind:       opts.BigBlind,
		players:        make(map[int64]*Player),
		availableSeats: availableSeats,
		activePlayers:  NewSeatRing(opts.Size),
		boardCards:     make(deck.Hand, 0, 5),
		dealerSeat:     -1,
		logs:           make([]string, 0),
		session:        session,
	}, nil
}

// ID returns the table identifier
func (t *Table) ID() int64 {
	return t.id
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Session returns the hand-history session this table appends to
func (t *Table) Session() *handhistory.Session {
	return t.session
}

// NewPlayer seats a new player at the lowest free seat
func (t *Table) NewPlayer(id int64, name string, startingStack int) (*Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[id]; ok {
		return nil, UserError(fmt.Sprintf("player %d is already seated", id))
	}

	if len(t.availableSeats) == 0 {
		return nil, ErrSeatUnavailable
	}

	seat := t.availableSeats[0]
	t.availableSeats = t.availableSeats[1:]

	player := newPlayer(id, name, seat, startingStack)
	t.players[id] = player

	t.logger.WithFields(logrus.Fields{
		"player": name,
		"seat":   seat,
		"stack":  startingStack,
	}).Info("player seated")

	return player, nil
}

// RemovePlayer removes a player and frees their seat. If the player was
// still contesting an active hand, they are treated as folded.
func (t *Table) RemovePlayer(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	player, ok := t.players[id]
	if !ok {
		return ErrUnknownPlayer
	}

	delete(t.players, id)
	t.availableSeats = append(t.availableSeats, player.Seat)
	sort.Ints(t.availableSeats)

	if t.currentHand != nil && t.activePlayers.Get(player.Seat) == player {
		t.foldOut(player)
	}

	t.logger.WithField("player", player.Name).Info("player removed")
	return nil
}

// foldOut removes a contesting player from the hand without a turn,
// used when a player leaves mid-hand
func (t *Table) foldOut(player *Player) {
	_ = t.activePlayers.Remove(player.Seat)
	player.cards = nil

	if t.activePlayers.Len() <= 1 {
		t.endGame()
		return
	}

	if t.currentTurn == player {
		next := t.nextActionable(player)
		if next == nil {
			t.nextRound()
			return
		}

		t.currentTurn = next
	}

	if t.aggressor == player {
		// anchor resolution on the next player still able to act
		t.aggressor = t.currentTurn
	}
}

// AddChips adds chips to a player's stack. Only allowed between hands
// so the chip-conservation accounting of the current hand stays intact.
func (t *Table) AddChips(id int64, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	player, ok := t.players[id]
	if !ok {
		return ErrUnknownPlayer
	}

	if t.currentHand != nil {
		return UserError("cannot add chips during a hand")
	}

	if amount <= 0 {
		return UserError("amount must be positive")
	}

	player.AddChips(amount)
	return nil
}

// SetStatus updates a player's availability flag. There is no auto-fold
// for disconnected players; a pending turn simply waits.
func (t *Table) SetStatus(id int64, status Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	player, ok := t.players[id]
	if !ok {
		return ErrUnknownPlayer
	}

	player.status = status
	return nil
}

// StartNewGame deals a fresh hand: resets players, builds the active
// ring, shuffles, moves the button, deals hole cards and posts blinds.
func (t *Table) StartNewGame() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentHand != nil {
		return ErrHandInProgress
	}

	eligible := 0
	for _, p := range t.players {
		if p.status == StatusActive {
			eligible++
		}
	}

	if eligible < 2 {
		return ErrInsufficientPlayers
	}

	t.logs = make([]string, 0)
	t.activePlayers = NewSeatRing(t.size)
	for _, p := range t.players {
		p.resetForHand()
		if p.status == StatusActive {
			if err := t.activePlayers.Insert(p.Seat, p); err != nil {
				return err
			}
		}
	}

	// snapshot the dealt-in players so the hand record and pot math stay
	// complete even if someone leaves mid-hand
	t.handPlayers = t.activePlayers.Slice()

	t.deck = deck.New()
	t.deck.Shuffle(t.random.Int63())
	t.boardCards = make(deck.Hand, 0, 5)
	t.pot = 0
	t.currentBet = 0
	t.uncalledAmount = 0

	streets := handhistory.Streets()
	t.streets = streets[1:]
	t.currentRound = handhistory.NewRound(0, streets[0])

	if t.dealerSeat < 0 {
		players := t.activePlayers.Slice()
		t.dealer = players[t.random.Intn(len(players))]
	} else {
		t.dealer = t.activePlayers.NextAfter(t.dealerSeat)
	}
	t.dealerSeat = t.dealer.Seat

	t.handStartedAt = time.Now()
	t.currentHand = handhistory.NewHand(
		t.gameNumber(),
		t.handStartedAt,
		t.name,
		t.size,
		t.dealerSeat,
		t.smallBlind,
		t.bigBlind,
	)

	t.logger.WithFields(logrus.Fields{
		"gameNumber": t.currentHand.GameNumber,
		"dealer":     t.dealer.Name,
		"players":    t.activePlayers.Len(),
	}).Info("new hand")

	// deal two cards to each player, starting left of the dealer
	t.currentTurn = t.activePlayers.NextAfter(t.dealerSeat)
	for i := 0; i < t.activePlayers.Len(); i++ {
		if err := t.act(handhistory.DealtCards, 0); err != nil {
			return err
		}
	}

	// the dealer posts the small blind when heads-up
	if t.activePlayers.Len() == 2 {
		t.currentTurn = t.dealer
		t.bbPlayer = t.activePlayers.NextAfter(t.dealerSeat)
	} else {
		t.currentTurn = t.activePlayers.NextAfter(t.dealerSeat)
		t.bbPlayer = t.activePlayers.NextAfterSkip(t.dealerSeat, 1)
	}

	if err := t.act(handhistory.PostSB, 0); err != nil {
		return err
	}

	return t.act(handhistory.PostBB, 0)
}

// gameNumber derives a strictly increasing hand identifier from the
// start-time microseconds and the table id. Two hands started within
// the same microsecond still get distinct numbers.
func (t *Table) gameNumber() int64 {
	n := t.handStartedAt.UnixMicro()*1_000 + t.id
	if n <= t.lastGameNumber {
		n = t.lastGameNumber + 1
	}
	t.lastGameNumber = n

	return n
}

// SaveHistory writes the session file once no hand is in progress. It
// holds the table lock for the duration of the write, so a hand
// finishing on another goroutine cannot append to the session mid-write
// and two writers cannot race on the same file.
func (t *Table) SaveHistory(dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.currentHand != nil || len(t.session.Hands) == 0 {
		return nil
	}

	return t.session.Save(dir)
}

// PlayerCount returns the number of seated players
func (t *Table) PlayerCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.players)
}

// HandInProgress returns true if a hand is being played
func (t *Table) HandInProgress() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.currentHand != nil
}

// CurrentTurnID returns the id of the player who must act, or false
func (t *Table) CurrentTurnID() (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.currentTurn == nil {
		return 0, false
	}

	return t.currentTurn.ID, true
}

func (t *Table) currentStreet() handhistory.Street {
	if t.currentRound == nil {
		return ""
	}

	return t.currentRound.Street
}

func (t *Table) addLog(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	t.logs = append(t.logs, msg)
	t.logger.Debug(msg)
}

// nextActionable returns the next player after the given one who can
// still act (seated in the ring, not all-in). Returns nil when the scan
// wraps back to the given player, or finds nobody; the street must then
// resolve.
func (t *Table) nextActionable(after *Player) *Player {
	seat := after.Seat
	for i := 0; i <= t.activePlayers.Len(); i++ {
		p := t.activePlayers.NextAfter(seat)
		if p == nil || p == after {
			return nil
		}

		if !p.isAllIn {
			return p
		}

		seat = p.Seat
	}

	return nil
}

// firstActionableAfterSeat returns the first non-all-in ring player
// strictly after the given seat, wrapping; nil if there is none
func (t *Table) firstActionableAfterSeat(seat int) *Player {
	start := seat
	for i := 0; i <= t.activePlayers.Len(); i++ {
		p := t.activePlayers.NextAfter(seat)
		if p == nil {
			return nil
		}

		if !p.isAllIn {
			return p
		}

		if p.Seat == start {
			return nil
		}

		seat = p.Seat
	}

	return nil
}
