package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ringPlayer(id int64, seat int) *Player {
	return newPlayer(id, "player", seat, 100)
}

func TestSeatRing_InsertAndRemove(t *testing.T) {
	a := assert.New(t)
	r := NewSeatRing(4)

	a.NoError(r.Insert(0, ringPlayer(1, 0)))
	a.NoError(r.Insert(2, ringPlayer(2, 2)))
	a.Equal(2, r.Len())
	a.Equal(4, r.Size())

	a.Error(r.Insert(2, ringPlayer(3, 2)))
	a.Error(r.Insert(-1, ringPlayer(3, -1)))
	a.Error(r.Insert(4, ringPlayer(3, 4)))

	a.NoError(r.Remove(2))
	a.Equal(1, r.Len())
	a.Nil(r.Get(2))
	a.Error(r.Remove(2))
}

func TestSeatRing_NextAfter(t *testing.T) {
	a := assert.New(t)
	r := NewSeatRing(6)

	p0 := ringPlayer(1, 0)
	p2 := ringPlayer(2, 2)
	p5 := ringPlayer(3, 5)
	a.NoError(r.Insert(0, p0))
	a.NoError(r.Insert(2, p2))
	a.NoError(r.Insert(5, p5))

	a.Equal(p2, r.NextAfter(0))
	a.Equal(p5, r.NextAfter(2))
	a.Equal(p0, r.NextAfter(5))

	// wraps from an unoccupied anchor too
	a.Equal(p5, r.NextAfter(3))

	a.Equal(p5, r.NextAfterSkip(0, 1))
	a.Equal(p0, r.NextAfterSkip(0, 2))
}

func TestSeatRing_NextAfter_empty(t *testing.T) {
	a := assert.New(t)
	r := NewSeatRing(4)
	a.Nil(r.NextAfter(0))

	p := ringPlayer(1, 1)
	a.NoError(r.Insert(1, p))
	a.Equal(p, r.NextAfter(1))
}

func TestSeatRing_SliceAndSeats(t *testing.T) {
	a := assert.New(t)
	r := NewSeatRing(5)

	p4 := ringPlayer(1, 4)
	p1 := ringPlayer(2, 1)
	a.NoError(r.Insert(4, p4))
	a.NoError(r.Insert(1, p1))

	a.Equal([]*Player{p1, p4}, r.Slice())
	a.Equal([]int{1, 4}, r.Seats())
}
