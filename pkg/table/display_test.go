package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Andres-Briones/NablaPoker/pkg/evaluator"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

func TestTable_GetDisplayData(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, evaluator.New(), defaultOptions())
	_, _ = tbl.NewPlayer(1, "alice", 100)
	_, _ = tbl.NewPlayer(2, "bob", 100)
	a.NoError(tbl.StartNewGame())

	_, _, err := tbl.GetDisplayData(99)
	a.Equal(ErrUnknownPlayer, err)

	info, state, err := tbl.GetDisplayData(1)
	a.NoError(err)

	a.Equal(int64(1), info.ID)
	a.Equal("test table", info.TableName)
	a.Equal(1, info.SmallBlindAmount)
	a.Equal(2, info.BigBlindAmount)

	a.Equal(3, state.Pot)
	a.Equal(1.5, state.PotBB)
	a.Equal(handhistory.Preflop, state.Street)
	a.Equal(0, state.DealerSeat)
	a.Empty(state.BoardCards)

	// alice is the dealer and acts first heads-up
	a.True(state.PlayerTurn)
	a.Equal("alice", state.CurrentTurnName)
	a.False(state.CanBet)
	a.False(state.CanCheck)

	a.Len(state.Players, 2)

	alice := state.Players[0]
	a.Equal("alice", alice.Name)
	a.True(alice.Dealer)
	a.Equal(99, alice.Chips)
	a.Equal(49.5, alice.ChipsBB)
	a.Equal(1, alice.Bet)
	a.Equal(0.5, alice.BetBB)
	a.Len(alice.Cards, 2)
	a.NotEqual("back", alice.Cards[0])
	a.InDelta(math.Pi/2, alice.Angle, 0.0001)

	// bob's hole cards stay hidden from alice
	bob := state.Players[1]
	a.Equal("bob", bob.Name)
	a.False(bob.Dealer)
	a.Equal([]string{"back", "back"}, bob.Cards)
	a.InDelta(3*math.Pi/2, bob.Angle, 0.0001)

	// bob sees his own cards and alice's backs
	_, state, err = tbl.GetDisplayData(2)
	a.NoError(err)
	a.False(state.PlayerTurn)
	a.Equal([]string{"back", "back"}, state.Players[0].Cards)
	a.NotEqual("back", state.Players[1].Cards[0])
	a.InDelta(math.Pi/2, state.Players[1].Angle, 0.0001)
}

func TestTable_GetDisplayData_checkAndBetFlags(t *testing.T) {
	a := assert.New(t)
	tbl := testTable(t, evaluator.New(), defaultOptions())
	_, _ = tbl.NewPlayer(1, "alice", 100)
	_, _ = tbl.NewPlayer(2, "bob", 100)
	a.NoError(tbl.StartNewGame())

	a.NoError(tbl.Act(1, handhistory.Call, 0))

	// the big blind can check the option but not bet
	_, state, err := tbl.GetDisplayData(2)
	a.NoError(err)
	a.True(state.PlayerTurn)
	a.False(state.CanBet)
	a.True(state.CanCheck)

	a.NoError(tbl.Act(2, handhistory.Check, 0))

	// fresh street: betting is open
	a.Equal(handhistory.Flop, tbl.currentStreet())
	_, state, err = tbl.GetDisplayData(2)
	a.NoError(err)
	a.True(state.PlayerTurn)
	a.True(state.CanBet)
	a.True(state.CanCheck)
	a.Len(state.BoardCards, 3)
}

func TestTable_GetDisplayData_showdownReveals(t *testing.T) {
	a := assert.New(t)
	eval := scriptedEvaluator{scores: map[string]int{
		"Ah": 1,
		"Kh": 7000,
	}}
	tbl := testTable(t, eval, defaultOptions())
	_, _ = tbl.NewPlayer(1, "alice", 10)
	_, _ = tbl.NewPlayer(2, "bob", 100)
	a.NoError(tbl.StartNewGame())

	setCards(tbl, 1, "Ah,Ad")
	setCards(tbl, 2, "Kh,Kd")

	a.NoError(tbl.Act(1, handhistory.Raise, 99))
	a.NoError(tbl.Act(2, handhistory.Call, 0))
	a.False(tbl.HandInProgress())

	// the winner's cards are face up for everyone after the showdown
	_, state, err := tbl.GetDisplayData(2)
	a.NoError(err)
	a.Equal([]string{"Ah", "Ad"}, state.Players[0].Cards)
}
