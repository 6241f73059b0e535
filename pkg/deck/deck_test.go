package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, d.CardsLeft())
	a.Equal("2c", d.Cards[0].String())
	a.Equal("As", d.Cards[51].String())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	unshuffled := d.HashCode()

	d.Shuffle(0)
	a.NotEqual(unshuffled, d.HashCode())
	a.Greater(d.GetSeed(), int64(0))

	d2 := New()
	d2.Shuffle(42)
	d3 := New()
	d3.Shuffle(42)
	a.Equal(d2.HashCode(), d3.HashCode())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	cards := d.Draw(2)
	a.Equal(2, len(cards))
	a.Equal(50, d.CardsLeft())
	a.True(d.CanDraw(50))
	a.False(d.CanDraw(51))

	d.Draw(50)
	a.Equal(0, d.CardsLeft())

	a.Panics(func() {
		d.Draw(1)
	})
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	card := CardFromString("Ac")
	a.Equal(Ace, card.Rank)
	a.Equal(Clubs, card.Suit)

	card = CardFromString("Td")
	a.Equal(Ten, card.Rank)
	a.Equal(Diamonds, card.Suit)
	a.Equal("T♢", card.Symbol())

	a.Panics(func() {
		CardFromString("1x")
	})
}

func TestCardsToString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2h,Kd,As")
	a.Equal("2h,Kd,As", CardsToString(cards))
	a.Equal([]string{"2h", "Kd", "As"}, CardsToStrings(cards))
	a.True(cards[2].Equal(&Card{Rank: Ace, Suit: Spades}))
	a.False(cards[2].Equal(cards[0]))
}
