package handhistory

// Street is a betting phase within a hand
type Street string

// street constants, in play order
const (
	Preflop  Street = "Preflop"
	Flop     Street = "Flop"
	Turn     Street = "Turn"
	River    Street = "River"
	Showdown Street = "Showdown"
)

// Streets returns the streets of a hand in play order
func Streets() []Street {
	return []Street{Preflop, Flop, Turn, River, Showdown}
}

// Action records a single decision within a round.
// Amount, IsAllIn and Cards are only persisted when nonzero/true/non-empty.
type Action struct {
	ActionID int      `json:"action_id"`
	PlayerID int64    `json:"player_id"`
	Action   Kind     `json:"action"`
	Amount   int      `json:"amount,omitempty"`
	IsAllIn  bool     `json:"is_allin,omitempty"`
	Cards    []string `json:"cards,omitempty"`
}

// Round records one street's actions and the cards revealed on that street
type Round struct {
	ID      int       `json:"id"`
	Street  Street    `json:"street"`
	Actions []*Action `json:"actions"`
	Cards   []string  `json:"cards"`
}

// NewRound returns an empty round for the given street
func NewRound(id int, street Street) *Round {
	return &Round{
		ID:      id,
		Street:  street,
		Actions: make([]*Action, 0),
		Cards:   make([]string, 0),
	}
}

// AddAction appends an action, assigning the next sequence number in the round
func (r *Round) AddAction(playerID int64, kind Kind) *Action {
	action := &Action{
		ActionID: len(r.Actions),
		PlayerID: playerID,
		Action:   kind,
	}

	r.Actions = append(r.Actions, action)
	return action
}

// SetCommunityCards records the cards revealed on this street
func (r *Round) SetCommunityCards(cards []string) {
	r.Cards = append(r.Cards, cards...)
}
