package table

import "fmt"

// SeatRing is a circular ordered collection of occupied seats, keyed by
// seat number. It is rebuilt at the start of every hand to hold the
// players dealt in, and shrinks as players fold.
//
// Seats are a fixed-size indexed ring, so any seat can anchor a
// wrapping scan; iteration starts from the lowest occupied seat purely
// so logs and tests are reproducible.
type SeatRing struct {
	slots []*Player
	count int
}

// NewSeatRing returns an empty ring with the given number of seats
func NewSeatRing(size int) *SeatRing {
	return &SeatRing{
		slots: make([]*Player, size),
	}
}

// Insert seats a player at the given position.
// The position must be empty and within the ring.
func (r *SeatRing) Insert(seat int, player *Player) error {
	if seat < 0 || seat >= len(r.slots) {
		return ErrUnknownPlayer
	}

	if r.slots[seat] != nil {
		return fmt.Errorf("seat %d is already occupied", seat)
	}

	r.slots[seat] = player
	r.count++
	return nil
}

// Remove empties the given position
func (r *SeatRing) Remove(seat int) error {
	if seat < 0 || seat >= len(r.slots) || r.slots[seat] == nil {
		return ErrUnknownPlayer
	}

	r.slots[seat] = nil
	r.count--
	return nil
}

// Get returns the player at the given position, or nil
func (r *SeatRing) Get(seat int) *Player {
	if seat < 0 || seat >= len(r.slots) {
		return nil
	}

	return r.slots[seat]
}

// NextAfter returns the player at the smallest occupied seat strictly
// greater than the given position, wrapping around to the lowest
// occupied seat. The given position does not need to be occupied.
// Returns nil if the ring is empty.
func (r *SeatRing) NextAfter(seat int) *Player {
	if r.count == 0 {
		return nil
	}

	n := len(r.slots)
	for i := 1; i <= n; i++ {
		if p := r.slots[(seat+i)%n]; p != nil {
			return p
		}
	}

	return nil
}

// NextAfterSkip is NextAfter, advanced skip more occupied seats
func (r *SeatRing) NextAfterSkip(seat, skip int) *Player {
	p := r.NextAfter(seat)
	for i := 0; i < skip && p != nil; i++ {
		p = r.NextAfter(p.Seat)
	}

	return p
}

// Slice returns the seated players in ascending seat order
func (r *SeatRing) Slice() []*Player {
	players := make([]*Player, 0, r.count)
	for _, p := range r.slots {
		if p != nil {
			players = append(players, p)
		}
	}

	return players
}

// Seats returns the occupied seat numbers in ascending order
func (r *SeatRing) Seats() []int {
	seats := make([]int, 0, r.count)
	for seat, p := range r.slots {
		if p != nil {
			seats = append(seats, seat)
		}
	}

	return seats
}

// Len returns the number of occupied seats
func (r *SeatRing) Len() int {
	return r.count
}

// Size returns the total number of seats in the ring
func (r *SeatRing) Size() int {
	return len(r.slots)
}
