package table

import (
	"github.com/Andres-Briones/NablaPoker/pkg/deck"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// Act applies one decision for the player whose turn it is. The caller
// identity is checked against the current turn before anything else, so
// stale or concurrent submissions are rejected with no state change.
func (t *Table) Act(playerID int64, kind handhistory.Kind, amount int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !kind.IsValid() {
		return ErrInvalidActionKind
	}

	if !kind.IsPlayerDecision() {
		return newIllegalAction(kind, "only the table may perform this action")
	}

	if t.currentHand == nil {
		return ErrNoHandInProgress
	}

	if t.currentTurn == nil || t.currentTurn.ID != playerID {
		return ErrNotPlayersTurn
	}

	return t.act(kind, amount)
}

// act dispatches the action kind against the current-turn player.
// Legality is fully checked before any chips move; the contribution and
// the matching pot increase happen together.
func (t *Table) act(kind handhistory.Kind, amount int) error {
	player := t.currentTurn
	street := t.currentStreet()

	isAllIn := false
	var dealtCards []string

	switch kind {
	case handhistory.DealtCards:
		cards := t.deck.Draw(2)
		player.cards = cards
		dealtCards = player.cards.Strings()
		amount = 0

	case handhistory.MucksCards, handhistory.ShowsCards:
		if t.bettingPending() {
			return newIllegalAction(kind, "betting is still pending")
		}
		player.mucks = kind == handhistory.MucksCards
		amount = 0

	case handhistory.PostAnte:
		if amount <= 0 {
			return newIllegalAction(kind, "the ante amount must be positive")
		}

		isAllIn, amount = t.capToStack(player, amount)
		t.contribute(player, amount, isAllIn)

	case handhistory.PostSB:
		isAllIn, amount = t.capToStack(player, t.smallBlind)
		t.contribute(player, amount, isAllIn)
		t.currentBet = amount

	case handhistory.PostBB:
		isAllIn, amount = t.capToStack(player, t.bigBlind)
		t.contribute(player, amount, isAllIn)
		t.currentBet = amount
		t.aggressor = player
		t.uncalledAmount = amount

	case handhistory.Fold:
		amount = 0
		player.hasActed = true
		_ = t.activePlayers.Remove(player.Seat)
		player.cards = nil
		t.recordAction(player, kind, amount, isAllIn, dealtCards)
		t.addLog("%s folds", player.Name)

		if t.activePlayers.Len() == 1 {
			t.endGame()
		} else {
			t.advanceTurn(player, kind)
		}
		return nil

	case handhistory.Check:
		// a posted blind that already matches the bet may be checked,
		// which covers the big blind's option on an unraised pot
		if t.currentBet != 0 && player.betAmount != t.currentBet {
			return newIllegalAction(kind, "the current bet is not zero")
		}
		amount = 0

	case handhistory.Bet:
		if t.currentBet != 0 {
			return newIllegalAction(kind, "the current bet is not zero")
		}
		if amount <= 0 {
			return newIllegalAction(kind, "the bet amount must be positive")
		}

		isAllIn, amount = t.capToStack(player, amount)
		t.contribute(player, amount, isAllIn)
		t.currentBet = player.betAmount
		t.aggressor = player
		t.uncalledAmount = player.betAmount

	case handhistory.Raise:
		if t.currentBet == 0 {
			return newIllegalAction(kind, "there is no bet to raise")
		}

		isAllIn, amount = t.capToStack(player, amount)
		totalRaise := player.betAmount + amount
		if totalRaise <= t.currentBet {
			return newIllegalAction(kind, "the raise must exceed the current bet of ${%d}", t.currentBet)
		}

		// an all-in below the minimum raise is still legal
		if !isAllIn && totalRaise < t.currentBet+t.smallBlind {
			return newIllegalAction(kind, "the raise must be at least ${%d}", t.currentBet+t.smallBlind)
		}

		t.contribute(player, amount, isAllIn)
		t.uncalledAmount = totalRaise - t.currentBet
		t.currentBet = totalRaise
		t.aggressor = player

	case handhistory.Call:
		if t.currentBet == 0 {
			return newIllegalAction(kind, "there is no bet to call")
		}
		if player.betAmount == t.currentBet {
			return newIllegalAction(kind, "the player already matches the current bet")
		}

		isAllIn, amount = t.capToStack(player, t.currentBet-player.betAmount)
		if isAllIn {
			// a short all-in call leaves a fresh uncalled remainder
			if t.uncalledAmount > amount {
				t.uncalledAmount -= amount
			} else {
				t.uncalledAmount = 0
			}
		} else {
			t.uncalledAmount = 0
		}
		t.contribute(player, amount, isAllIn)

	default:
		// kinds like Straddle or Post Dead are accepted by the record
		// format but not playable at this table
		return newIllegalAction(kind, "not supported at this table")
	}

	switch kind {
	case handhistory.Check, handhistory.Bet, handhistory.Raise, handhistory.Call:
		player.hasActed = true
	}

	t.recordAction(player, kind, amount, isAllIn, dealtCards)

	if amount > 0 {
		t.addLog("%s: %s ${%d}", player.Name, kind, amount)
	} else if street != "" && kind != handhistory.DealtCards {
		t.addLog("%s: %s", player.Name, kind)
	}

	t.advanceTurn(player, kind)
	return nil
}

// capToStack caps a contribution to the player's remaining stack. It
// does not mutate the player; the caller marks the all-in only once the
// action is known to be legal.
func (t *Table) capToStack(player *Player, amount int) (bool, int) {
	if amount >= player.stack {
		return true, player.stack
	}

	return false, amount
}

// contribute is the atomic stack-decrease / pot-increase pairing. It
// runs only after the action passed its legality checks, so this is
// also where an all-in becomes sticky.
func (t *Table) contribute(player *Player, amount int, isAllIn bool) {
	if isAllIn {
		player.isAllIn = true
	}

	player.bet(amount)
	t.pot += amount
}

func (t *Table) recordAction(player *Player, kind handhistory.Kind, amount int, isAllIn bool, cards []string) {
	action := t.currentRound.AddAction(player.ID, kind)
	action.Amount = amount
	action.IsAllIn = isAllIn
	action.Cards = cards
}

// bettingPending returns true while at least two contesting players can
// still make decisions this hand
func (t *Table) bettingPending() bool {
	if t.currentHand == nil || t.currentStreet() == handhistory.Showdown {
		return false
	}

	canAct := 0
	for _, p := range t.activePlayers.Slice() {
		if !p.isAllIn {
			canAct++
		}
	}

	return canAct > 1
}

// advanceTurn moves the turn to the next seat that can act, or forces
// the street to resolve when action has closed
func (t *Table) advanceTurn(actor *Player, kind handhistory.Kind) {
	next := t.nextActionable(actor)
	if next == nil {
		t.nextRound()
		return
	}

	switch kind {
	case handhistory.DealtCards, handhistory.PostSB, handhistory.PostBB:
		t.currentTurn = next
		return
	}

	if t.currentStreet() == handhistory.Preflop {
		switch {
		case next == t.aggressor:
			// the big blind gets the option on an unraised pot
			if next == t.bbPlayer && t.currentBet == t.bigBlind && !next.hasActed {
				t.currentTurn = next
			} else {
				t.nextRound()
			}
		case actor == t.aggressor && actor == t.bbPlayer && kind != handhistory.Raise:
			// the big blind declined their option
			t.nextRound()
		case next.hasActed && next.betAmount == t.currentBet:
			// everyone left has matched; happens when the aggressor is
			// all-in and can no longer anchor the round
			t.nextRound()
		default:
			t.currentTurn = next
		}
		return
	}

	if next == t.aggressor || (next.hasActed && next.betAmount == t.currentBet) {
		t.nextRound()
	} else {
		t.currentTurn = next
	}
}

// nextRound closes the current street: the round joins the hand, any
// uncalled bet goes back, street bets reset, and the next street's
// board cards are dealt. Streets advance without input while fewer than
// two players can still act.
func (t *Table) nextRound() {
	t.currentHand.AddRound(t.currentRound)
	t.refundUncalled()

	t.currentBet = 0
	for _, p := range t.activePlayers.Slice() {
		p.betAmount = 0
		p.hasActed = false
	}

	street := t.streets[0]
	t.streets = t.streets[1:]
	t.currentRound = handhistory.NewRound(len(t.currentHand.Rounds), street)

	if street == handhistory.Showdown {
		t.endGame()
		return
	}

	n := 1
	if street == handhistory.Flop {
		n = 3
	}

	cards := t.deck.Draw(n)
	t.boardCards = append(t.boardCards, cards...)
	t.currentRound.SetCommunityCards(deck.CardsToStrings(cards))
	t.addLog("%s: %s", street, deck.CardsToString(cards))

	// the turn anchor skips all-in players but they stay in the pot
	first := t.firstActionableAfterSeat(t.dealerSeat)

	if !t.bettingPending() {
		t.nextRound()
		return
	}

	t.aggressor = first
	t.currentTurn = first
}

// refundUncalled returns the unmatched portion of the last bet or raise
// to the aggressor
func (t *Table) refundUncalled() {
	if t.uncalledAmount == 0 || t.aggressor == nil {
		return
	}

	t.aggressor.stack += t.uncalledAmount
	t.pot -= t.uncalledAmount
	t.addLog("uncalled bet (${%d}) returned to %s", t.uncalledAmount, t.aggressor.Name)
	t.uncalledAmount = 0
}
