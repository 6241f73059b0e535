package table

import (
	"fmt"

	"github.com/Andres-Briones/NablaPoker/pkg/handhistory"
)

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// rejection taxonomy. Every one of these is detected before any chip
// movement or turn advancement happens.
var (
	// ErrSeatUnavailable is returned when seating a player at a full table
	ErrSeatUnavailable = UserError("no available seats")

	// ErrInvalidActionKind is returned for an action kind outside the enumerated set
	ErrInvalidActionKind = UserError("invalid action kind")

	// ErrHandInProgress is returned when starting a game while a hand is active
	ErrHandInProgress = UserError("finish the hand before starting a new one")

	// ErrInsufficientPlayers is returned when fewer than 2 active players are seated
	ErrInsufficientPlayers = UserError("not enough players to start a game")

	// ErrUnknownPlayer is returned for lookups against a seat or id not present
	ErrUnknownPlayer = UserError("unknown seat or player")

	// ErrNotPlayersTurn is returned when the caller is not the player who must act
	ErrNotPlayersTurn = UserError("it is not your turn")

	// ErrNoHandInProgress is returned for a betting action outside a hand
	ErrNoHandInProgress = UserError("no hand in progress")
)

// IllegalActionError is a betting action that violates street legality rules
type IllegalActionError struct {
	Kind   handhistory.Kind
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %q: %s", e.Kind, e.Reason)
}

func newIllegalAction(kind handhistory.Kind, format string, a ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		Kind:   kind,
		Reason: fmt.Sprintf(format, a...),
	}
}
