package table

import (
	"math"

	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// TableInfo is the static table description shown to every player
type TableInfo struct {
	ID               int64  `json:"id"`
	TableName        string `json:"table_name"`
	SmallBlindAmount int    `json:"small_blind_amount"`
	BigBlindAmount   int    `json:"big_blind_amount"`
}

// PlayerState is one player's seat as seen by the requesting player.
// Cards show backs unless they are the viewer's own or were revealed.
type PlayerState struct {
	Name    string   `json:"name"`
	ID      int64    `json:"id"`
	Status  Status   `json:"status"`
	Seat    int      `json:"seat"`
	Chips   int      `json:"chips"`
	ChipsBB float64  `json:"chips_bb"`
	Bet     int      `json:"bet"`
	BetBB   float64  `json:"bet_bb"`
	Dealer  bool     `json:"dealer"`
	Cards   []string `json:"cards"`

	// Angle positions the seat around the table, in radians, with the
	// viewer at the bottom
	Angle float64 `json:"angle"`
}

// GameState is the dynamic view of the hand for one player
type GameState struct {
	Pot             int                `json:"pot"`
	PotBB           float64            `json:"pot_bb"`
	BoardCards      []string           `json:"board_cards"`
	Street          handhistory.Street `json:"street"`
	DealerSeat      int                `json:"dealer_seat"`
	PlayerTurn      bool               `json:"player_turn"`
	CurrentTurnName string             `json:"current_turn_name"`
	CanBet          bool               `json:"can_bet"`
	CanCheck        bool               `json:"can_check"`
	Logs            []string           `json:"logs"`
	Players         []*PlayerState     `json:"players"`
}

// GetDisplayData projects the table for one player. It takes the read
// lock, so it sees a fully-committed state and may run concurrently
// with other reads.
func (t *Table) GetDisplayData(playerID int64) (*TableInfo, *GameState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	viewer, ok := t.players[playerID]
	if !ok {
		return nil, nil, ErrUnknownPlayer
	}

	info := &TableInfo{
		ID:               t.id,
		TableName:        t.name,
		SmallBlindAmount: t.smallBlind,
		BigBlindAmount:   t.bigBlind,
	}

	state := &GameState{
		Pot:        t.pot,
		PotBB:      t.toBB(t.pot),
		BoardCards: t.boardCards.Strings(),
		Street:     t.currentStreet(),
		DealerSeat: t.dealerSeat,
		CanBet:     t.currentBet == 0,
		Logs:       append([]string(nil), t.logs...),
	}

	if t.currentTurn != nil {
		state.PlayerTurn = t.currentTurn.ID == playerID
		state.CurrentTurnName = t.currentTurn.Name
		state.CanCheck = t.currentBet == 0 || t.currentTurn.betAmount == t.currentBet
	}

	seats := t.usedSeats()
	viewerIndex := indexOf(seats, viewer.Seat)

	state.Players = make([]*PlayerState, 0, len(t.players))
	for _, seat := range seats {
		p := t.playerBySeat(seat)
		ps := &PlayerState{
			Name:    p.Name,
			ID:      p.ID,
			Status:  p.status,
			Seat:    p.Seat,
			Chips:   p.stack,
			ChipsBB: t.toBB(p.stack),
			Bet:     p.betAmount,
			BetBB:   t.toBB(p.betAmount),
			Dealer:  p.Seat == t.dealerSeat,
			Angle:   t.seatAngle(indexOf(seats, p.Seat), viewerIndex),
			Cards:   []string{},
		}

		if len(p.cards) > 0 {
			if p.ID == playerID || !p.mucks {
				ps.Cards = p.cards.Strings()
			} else {
				ps.Cards = []string{"back", "back"}
			}
		}

		state.Players = append(state.Players, ps)
	}

	return info, state, nil
}

func (t *Table) toBB(amount int) float64 {
	return float64(amount) / float64(t.bigBlind)
}

// seatAngle spaces the occupied seats evenly around the table with the
// viewer fixed at the bottom
func (t *Table) seatAngle(seatIndex, viewerIndex int) float64 {
	n := len(t.players)
	if n == 0 {
		return 0
	}

	return math.Pi * (2*float64(seatIndex-viewerIndex)/float64(n) + 0.5)
}

func (t *Table) usedSeats() []int {
	seats := make([]int, 0, len(t.players))
	for seat := 0; seat < t.size; seat++ {
		if t.playerBySeat(seat) != nil {
			seats = append(seats, seat)
		}
	}

	return seats
}

func (t *Table) playerBySeat(seat int) *Player {
	for _, p := range t.players {
		if p.Seat == seat {
			return p
		}
	}

	return nil
}

func indexOf(values []int, value int) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}

	return -1
}
