package deck

import (
	"fmt"
	"regexp"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "c"
	Diamonds Suit = "d"
	Hearts   Suit = "h"
	Spades   Suit = "s"
)

// face cards
const (
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

var rankChars = map[int]string{
	2: "2", 3: "3", 4: "4", 5: "5", 6: "6", 7: "7", 8: "8", 9: "9",
	Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var charRanks = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"T": 10, "J": 11, "Q": 12, "K": 13, "A": 14,
}

// String returns the card in hand-history notation, i.e. "Ac" or "Td"
func (c *Card) String() string {
	rank, ok := rankChars[c.Rank]
	if !ok {
		panic(fmt.Sprintf("unknown rank: %d", c.Rank))
	}

	return rank + string(c.Suit)
}

// Symbol returns a human-friendly representation, i.e. "A♣"
func (c *Card) Symbol() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return rankChars[c.Rank] + suit
}

// Equal returns true if the cards match suit and rank
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

var cardRx = regexp.MustCompile(`^([2-9TJQKA])([cdhs])\z`)

// CardFromString returns a Card from a string like "Ac".
// Panics if the string cannot be parsed; only call this with trusted input.
func CardFromString(s string) *Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	return &Card{
		Rank: charRanks[match[1]],
		Suit: Suit(match[2]),
	}
}

// CardsFromString returns a slice of cards from a string like "Ac,Td"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToStrings converts a slice of cards into hand-history notation
func CardsToStrings(cards []*Card) []string {
	out := make([]string, len(cards))
	for i, card := range cards {
		out[i] = card.String()
	}

	return out
}

// CardsToString joins the cards into a single comma-separated string
func CardsToString(cards []*Card) string {
	return strings.Join(CardsToStrings(cards), ",")
}
