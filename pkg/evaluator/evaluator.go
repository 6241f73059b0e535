// Package evaluator adapts an external 7-card hand-strength evaluator.
// Scores are total-ordered with lower meaning stronger; the fixed score
// ranges map onto the standard hand categories.
package evaluator

import (
	"fmt"

	chpoker "github.com/chehsunliu/poker"

	"github.com/Andres-Briones/NablaPoker/pkg/deck"
)

// Category is the name of a hand-strength class
type Category string

// hand categories, weakest first
const (
	HighCard      Category = "High Card"
	OnePair       Category = "One Pair"
	TwoPair       Category = "Two Pair"
	ThreeOfAKind  Category = "Three of a Kind"
	Straight      Category = "Straight"
	Flush         Category = "Flush"
	FullHouse     Category = "Full House"
	FourOfAKind   Category = "Four of a Kind"
	StraightFlush Category = "Straight Flush"
	RoyalFlush    Category = "Royal Flush"
)

// Result is a scored hand. Score is comparable across players within a
// single board; lower is stronger.
type Result struct {
	Score    int      `json:"score"`
	Category Category `json:"category"`
}

// Evaluator scores a poker hand of 5 to 7 cards
type Evaluator interface {
	Evaluate(cards deck.Hand) (Result, error)
}

// SevenCard is the production Evaluator, backed by the external
// scoring library.
type SevenCard struct{}

var _ Evaluator = SevenCard{}

// New returns the production evaluator
func New() SevenCard {
	return SevenCard{}
}

// Evaluate scores the best 5-card hand available from the given cards
func (SevenCard) Evaluate(cards deck.Hand) (Result, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Result{}, fmt.Errorf("cannot evaluate %d cards; want 5 to 7", len(cards))
	}

	converted := make([]chpoker.Card, len(cards))
	for i, card := range cards {
		converted[i] = chpoker.NewCard(card.String())
	}

	score := int(chpoker.Evaluate(converted))
	return Result{
		Score:    score,
		Category: CategoryForScore(score),
	}, nil
}

// CategoryForScore maps a strength score onto its category name
func CategoryForScore(score int) Category {
	switch {
	case score > 6185:
		return HighCard
	case score > 3325:
		return OnePair
	case score > 2467:
		return TwoPair
	case score > 1609:
		return ThreeOfAKind
	case score > 1599:
		return Straight
	case score > 322:
		return Flush
	case score > 166:
		return FullHouse
	case score > 10:
		return FourOfAKind
	case score > 1:
		return StraightFlush
	default:
		return RoyalFlush
	}
}

// Winners returns the ids whose result ties the best (lowest) score
func Winners(results map[int64]Result) []int64 {
	best := -1
	var winners []int64
	for id, result := range results {
		switch {
		case best < 0 || result.Score < best:
			best = result.Score
			winners = []int64{id}
		case result.Score == best:
			winners = append(winners, id)
		}
	}

	return winners
}
