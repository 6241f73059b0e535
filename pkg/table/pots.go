package table

import (
	"sort"

	"github.com/Andres-Briones/NablaPoker/pkg/evaluator"
	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// sidePot is one contribution tier: its chips and the non-folded
// players eligible to win it
type sidePot struct {
	amount   int
	eligible []*Player
}

// endGame resolves the hand: refunds any residual uncalled bet, builds
// the side pots, pays the winners, freezes the hand record and clears
// the per-hand state
func (t *Table) endGame() {
	t.refundUncalled()

	contenders := t.activePlayers.Slice()
	pots := t.buildSidePots(contenders)

	for i, pot := range pots {
		record := handhistory.NewPot(i+1, pot.amount)

		winners := t.potWinners(pot)
		share := pot.amount / len(winners)
		remainder := pot.amount % len(winners)

		for j, winner := range winners {
			amount := share
			if j == 0 {
				// the odd chip goes to the first winner clockwise from the dealer
				amount += remainder
			}

			winner.addWinnings(amount)
			winner.mucks = false
			t.pot -= amount
			record.AddWin(winner.ID, amount)

			t.addLog("%s won ${%d} from pot %d", winner.Name, amount, i+1)
		}

		t.currentHand.AddPot(record)
	}

	if t.pot != 0 {
		// buildSidePots folds any residue into the first pot, so a
		// nonzero balance here means the accounting is broken
		t.logger.WithField("pot", t.pot).Error("pot not empty after payouts")
		t.pot = 0
	}

	t.finishHandRecord(contenders)

	// clear per-hand transient state
	t.currentBet = 0
	for _, p := range t.handPlayers {
		p.betAmount = 0
	}
	t.currentTurn = nil
	t.currentRound = nil
	t.currentHand = nil
	t.bbPlayer = nil
	t.aggressor = nil
	t.activePlayers = NewSeatRing(t.size)

	// busted players sit out until they re-fund
	for _, p := range t.players {
		if p.stack == 0 {
			p.status = StatusInactive
		}
	}
}

// buildSidePots partitions the pot by contribution tier. Tier sizing
// counts every player's chips (folded players' contributions are capped
// into each tier) while eligibility is restricted to non-folded players
// who reached the tier, so the pot total is always fully distributed.
func (t *Table) buildSidePots(contenders []*Player) []sidePot {
	levels := make([]int, 0, len(contenders))
	seen := make(map[int]bool)
	for _, p := range contenders {
		c := p.contribution()
		if c > 0 && !seen[c] {
			seen[c] = true
			levels = append(levels, c)
		}
	}
	sort.Ints(levels)

	pots := make([]sidePot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		amount := 0
		for _, p := range t.handPlayers {
			c := p.contribution()
			if c > level {
				c = level
			}
			if c > prev {
				amount += c - prev
			}
		}

		eligible := make([]*Player, 0, len(contenders))
		for _, p := range contenders {
			if p.contribution() >= level {
				eligible = append(eligible, p)
			}
		}

		pots = append(pots, sidePot{amount: amount, eligible: eligible})
		prev = level
	}

	total := 0
	for _, pot := range pots {
		total += pot.amount
	}

	if residue := t.pot - total; residue > 0 {
		if len(pots) == 0 {
			// no contender has chips invested, which happens when a
			// hand folds out before the blinds are matched and the
			// uncalled portion was already refunded. Whatever is left
			// belongs to the remaining players.
			return []sidePot{{amount: residue, eligible: contenders}}
		}

		// chips not reachable through any contribution tier would
		// otherwise be stranded
		t.logger.WithField("residue", residue).Warn("reconciling stranded chips into the main pot")
		pots[0].amount += residue
	}

	return pots
}

// potWinners returns the winners of one pot, ordered clockwise from the
// dealer. A single eligible player wins outright without the evaluator.
func (t *Table) potWinners(pot sidePot) []*Player {
	if len(pot.eligible) == 1 {
		return pot.eligible
	}

	results := make(map[int64]evaluator.Result, len(pot.eligible))
	byID := make(map[int64]*Player, len(pot.eligible))
	for _, p := range pot.eligible {
		hand := append(p.cards.Clone(), t.boardCards...)
		result, err := t.eval.Evaluate(hand)
		if err != nil {
			// 2 hole + 5 board cards are guaranteed by the state machine
			panic(err)
		}

		results[p.ID] = result
		byID[p.ID] = p
		t.addLog("%s shows %s (%s)", p.Name, p.cards, result.Category)
	}

	winnerIDs := evaluator.Winners(results)
	winners := make(map[int64]*Player, len(winnerIDs))
	for _, id := range winnerIDs {
		winners[id] = byID[id]
	}

	return t.clockwiseFromDealer(winners)
}

// clockwiseFromDealer orders the given players by seat, starting one
// seat after the dealer
func (t *Table) clockwiseFromDealer(players map[int64]*Player) []*Player {
	ordered := make([]*Player, 0, len(players))
	seat := t.dealerSeat
	for i := 0; i < t.activePlayers.Len() && len(ordered) < len(players); i++ {
		p := t.activePlayers.NextAfter(seat)
		if p == nil {
			break
		}

		if _, ok := players[p.ID]; ok {
			ordered = append(ordered, p)
		}

		seat = p.Seat
	}

	return ordered
}

// finishHandRecord freezes the hand: reveal actions for a showdown,
// player snapshots with final stacks, and the append to the session
func (t *Table) finishHandRecord(contenders []*Player) {
	if t.currentRound != nil {
		if t.currentRound.Street == handhistory.Showdown && len(contenders) >= 2 {
			for _, p := range contenders {
				if p.mucks {
					t.currentRound.AddAction(p.ID, handhistory.MucksCards)
				} else {
					action := t.currentRound.AddAction(p.ID, handhistory.ShowsCards)
					action.Cards = p.cards.Strings()
				}
			}
			t.currentHand.AddRound(t.currentRound)
		} else if t.currentRound.Street != handhistory.Showdown {
			// a fold ended the hand mid-street
			t.currentHand.AddRound(t.currentRound)
		}
	}

	// the dealt-in snapshot keeps players who left mid-hand in the
	// record, so every action's player id resolves
	for _, p := range t.handPlayers {
		t.currentHand.AddPlayer(p.snapshot())
	}

	t.session.AddHand(t.currentHand)
}
