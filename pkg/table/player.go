package table

import (
	"fmt"

	"github.com/Andres-Briones/NablaPoker/pkg/deck"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// Status is a player's availability at the table
type Status string

// status constants
const (
	StatusActive       Status = "Active"
	StatusInactive     Status = "Inactive"
	StatusDisconnected Status = "Disconnected"
)

// Player is the per-seat state that persists across hands.
// The chip stack carries over from hand to hand and is only ever
// mutated through bet, AddChips and winnings payouts.
type Player struct {
	ID   int64
	Name string
	Seat int

	stack         int
	startingStack int // stack snapshot at the start of the current hand
	betAmount     int // contribution on the current street
	cards         deck.Hand
	status        Status
	isAllIn       bool
	hasActed      bool // made a voluntary decision on the current street
	mucks         bool
	winAmount     int
	won           bool
}

func newPlayer(id int64, name string, seat, startingStack int) *Player {
	return &Player{
		ID:            id,
		Name:          name,
		Seat:          seat,
		stack:         startingStack,
		startingStack: startingStack,
		cards:         make(deck.Hand, 0, 2),
		status:        StatusActive,
		mucks:         true,
	}
}

// Stack returns the player's chip balance
func (p *Player) Stack() int {
	return p.stack
}

// BetAmount returns the player's contribution on the current street
func (p *Player) BetAmount() int {
	return p.betAmount
}

// Cards returns the player's hole cards
func (p *Player) Cards() deck.Hand {
	return p.cards
}

// Status returns the player's availability
func (p *Player) Status() Status {
	return p.status
}

// IsAllIn returns true if the player has committed their whole stack
func (p *Player) IsAllIn() bool {
	return p.isAllIn
}

// Mucks returns true if the player prefers not to show their cards
func (p *Player) Mucks() bool {
	return p.mucks
}

// WinAmount returns what the player won in the last completed hand
func (p *Player) WinAmount() int {
	return p.winAmount
}

// bet moves chips from the stack into the street contribution.
// The caller must have already capped the amount to the stack.
func (p *Player) bet(amount int) {
	if amount > p.stack {
		panic(fmt.Sprintf("bet of %d exceeds stack of %d", amount, p.stack))
	}

	p.betAmount += amount
	p.stack -= amount
}

// contribution returns the total chips the player has put in this hand
func (p *Player) contribution() int {
	return p.startingStack - p.stack
}

func (p *Player) addWinnings(amount int) {
	p.stack += amount
	p.winAmount += amount
	p.won = true
}

// resetForHand clears the per-hand transient state and snapshots the stack
func (p *Player) resetForHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.betAmount = 0
	p.isAllIn = false
	p.hasActed = false
	p.mucks = true
	p.winAmount = 0
	p.won = false
	p.startingStack = p.stack
}

// AddChips tops up the stack between hands. A busted player becomes
// eligible to be dealt in again.
func (p *Player) AddChips(amount int) {
	p.stack += amount
	if p.status == StatusInactive && p.stack > 0 {
		p.status = StatusActive
	}
}

func (p *Player) snapshot() *handhistory.PlayerSnapshot {
	return &handhistory.PlayerSnapshot{
		ID:            p.ID,
		Name:          p.Name,
		StartingStack: p.startingStack,
		FinalStack:    p.stack,
		Seat:          p.Seat,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (seat %d, ${%d})", p.Name, p.Seat, p.stack)
}
