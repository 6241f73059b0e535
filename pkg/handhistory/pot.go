package handhistory

// PlayerWin records one player's share of a pot
type PlayerWin struct {
	PlayerID        int64 `json:"player_id"`
	WinAmount       int   `json:"win_amount"`
	CashoutAmount   int   `json:"cashout_amount"`
	CashoutFee      int   `json:"cashout_fee"`
	BonusAmount     int   `json:"bonus_amount"`
	ContributedRake int   `json:"contributed_rake"`
}

// Pot is a single pot awarded at the end of a hand.
// Rake and Jackpot stay zero unless supplied externally.
type Pot struct {
	Number     int          `json:"pot_number"`
	Amount     int          `json:"amount"`
	Rake       int          `json:"rake"`
	Jackpot    int          `json:"jackpot"`
	PlayerWins []*PlayerWin `json:"players_wins"`
}

// NewPot returns a pot with no winners recorded yet
func NewPot(number, amount int) *Pot {
	return &Pot{
		Number:     number,
		Amount:     amount,
		PlayerWins: make([]*PlayerWin, 0),
	}
}

// AddWin records a winner's share of this pot
func (p *Pot) AddWin(playerID int64, amount int) {
	p.PlayerWins = append(p.PlayerWins, &PlayerWin{
		PlayerID:  playerID,
		WinAmount: amount,
	})
}
