package handhistory

import "fmt"

// Kind identifies a hand-history action type.
// The string values are the canonical names used in the persisted document.
type Kind string

// action kind constants
const (
	DealtCards     Kind = "Dealt Cards"
	MucksCards     Kind = "Mucks Cards"
	ShowsCards     Kind = "Shows Cards"
	PostAnte       Kind = "Post Ante"
	PostSB         Kind = "Post SB"
	PostBB         Kind = "Post BB"
	Straddle       Kind = "Straddle"
	PostDead       Kind = "Post Dead"
	PostExtraBlind Kind = "Post Extra Blind"
	Fold           Kind = "Fold"
	Check          Kind = "Check"
	Bet            Kind = "Bet"
	Raise          Kind = "Raise"
	Call           Kind = "Call"
	AddedChips     Kind = "Added Chips"
	SitsDown       Kind = "Sits Down"
	StandsUp       Kind = "Stands Up"
	AddToPot       Kind = "Add to Pot"
)

var allowedKinds = map[Kind]bool{
	DealtCards:     true,
	MucksCards:     true,
	ShowsCards:     true,
	PostAnte:       true,
	PostSB:         true,
	PostBB:         true,
	Straddle:       true,
	PostDead:       true,
	PostExtraBlind: true,
	Fold:           true,
	Check:          true,
	Bet:            true,
	Raise:          true,
	Call:           true,
	AddedChips:     true,
	SitsDown:       true,
	StandsUp:       true,
	AddToPot:       true,
}

var playerDecisions = map[Kind]bool{
	MucksCards: true,
	ShowsCards: true,
	Fold:       true,
	Check:      true,
	Bet:        true,
	Raise:      true,
	Call:       true,
}

// KindFromString returns a Kind for the given string
func KindFromString(s string) (Kind, error) {
	if _, ok := allowedKinds[Kind(s)]; ok {
		return Kind(s), nil
	}

	return "", fmt.Errorf("unknown action kind: %s", s)
}

// IsValid returns true if the kind is in the enumerated set
func (k Kind) IsValid() bool {
	_, ok := allowedKinds[k]
	return ok
}

// IsPlayerDecision returns true if the kind is a decision a player makes
// on their own turn. The dealing and posting kinds are emitted by the
// table itself and are never accepted from a player.
func (k Kind) IsPlayerDecision() bool {
	return playerDecisions[k]
}

func (k Kind) String() string {
	return string(k)
}
