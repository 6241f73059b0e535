package handhistory

import "time"

// GameTypeHoldem is the only game type this engine produces
const GameTypeHoldem = "Holdem"

// PlayerSnapshot is a player's identity and stack bounds for one hand
type PlayerSnapshot struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StartingStack int    `json:"starting_stack"`
	FinalStack    int    `json:"final_stack"`
	Seat          int    `json:"seat"`
}

// BetLimit describes the betting structure of the hand
type BetLimit struct {
	BetType string `json:"bet_type"`
	BetCap  int    `json:"bet_cap"`
}

// Hand is the record of one complete deal. It is built up while the hand
// plays and must not be mutated once it is appended to a Session.
type Hand struct {
	GameNumber       int64             `json:"game_number"`
	StartDateUTC     string            `json:"start_date_utc"`
	TableName        string            `json:"table_name"`
	TableSize        int               `json:"table_size"`
	GameType         string            `json:"game_type"`
	BetLimit         BetLimit          `json:"bet_limit"`
	Tournament       bool              `json:"tournament"`
	HeroPlayerID     int64             `json:"hero_player_id"`
	DealerSeat       int               `json:"dealer_seat"`
	SmallBlindAmount int               `json:"small_blind_amount"`
	BigBlindAmount   int               `json:"big_blind_amount"`
	AnteAmount       int               `json:"ante_amount"`
	Flags            []string          `json:"flags"`
	Players          []*PlayerSnapshot `json:"players"`
	Rounds           []*Round          `json:"rounds"`
	Pots             []*Pot            `json:"pots"`
}

// NewHand starts the record of a new deal
func NewHand(gameNumber int64, startedAt time.Time, tableName string, tableSize, dealerSeat, smallBlind, bigBlind int) *Hand {
	return &Hand{
		GameNumber:       gameNumber,
		StartDateUTC:     startedAt.UTC().Format("2006-01-02T15:04:05Z"),
		TableName:        tableName,
		TableSize:        tableSize,
		GameType:         GameTypeHoldem,
		BetLimit:         BetLimit{BetType: "NL"},
		DealerSeat:       dealerSeat,
		SmallBlindAmount: smallBlind,
		BigBlindAmount:   bigBlind,
		Flags:            make([]string, 0),
		Players:          make([]*PlayerSnapshot, 0),
		Rounds:           make([]*Round, 0),
		Pots:             make([]*Pot, 0),
	}
}

// AddRound appends a completed round
func (h *Hand) AddRound(round *Round) {
	h.Rounds = append(h.Rounds, round)
}

// AddPot appends an awarded pot
func (h *Hand) AddPot(pot *Pot) {
	h.Pots = append(h.Pots, pot)
}

// AddPlayer appends a player snapshot
func (h *Hand) AddPlayer(snapshot *PlayerSnapshot) {
	h.Players = append(h.Players, snapshot)
}

// Meta is the site context a Session stamps onto each persisted hand
type Meta struct {
	SpecVersion     string `json:"spec_version"`
	SiteName        string `json:"site_name"`
	NetworkName     string `json:"network_name"`
	InternalVersion string `json:"internal_version"`
}

// Document is the persisted form of one hand: the hand itself plus the
// session's site metadata, wrapped in the standard "ohh" envelope.
type Document struct {
	OHH struct {
		Meta
		*Hand
	} `json:"ohh"`
}

// Document returns the persistable form of the hand
func (h *Hand) Document(meta Meta) *Document {
	var doc Document
	doc.OHH.Meta = meta
	doc.OHH.Hand = h

	return &doc
}
