package holdem

import (
	"rivercard-server/pkg/chips"
	"rivercard-server/pkg/deck"
)

// Status is a seated player's state within a hand
type Status string

// status constants
const (
	// StatusWaiting means the player is live and waiting on the dealer or other players
	StatusWaiting Status = "waiting"
	// StatusActive means the player is currently making a decision
	StatusActive Status = "active"
	// StatusFolded means the player mucked their hand
	StatusFolded Status = "folded"
)

// SeatedPlayer tracks a single player's state for the duration of one hand
type SeatedPlayer struct {
	PlayerID int64
	Name     string

	seat    *Seat
	cards   deck.Hand
	balance *chips.Ledger
	bet     *chips.Ledger
	status  Status
}

func newSeatedPlayer(id int64, name string, credit int, seat *Seat) (*SeatedPlayer, error) {
	balance, err := chips.NewLedger(credit)
	if err != nil {
		return nil, err
	}

	bet, _ := chips.NewLedger(0)

	return &SeatedPlayer{
		PlayerID: id,
		Name:     name,
		seat:     seat,
		cards:    make(deck.Hand, 0, 2),
		balance:  balance,
		bet:      bet,
		status:   StatusWaiting,
	}, nil
}

// Seat returns the player's seat
func (p *SeatedPlayer) Seat() *Seat {
	return p.seat
}

// Cards returns the player's hole cards
func (p *SeatedPlayer) Cards() deck.Hand {
	return p.cards
}

// Balance returns the player's remaining chips for this hand
func (p *SeatedPlayer) Balance() int {
	return p.balance.Amount()
}

// CurrentBet returns what the player has wagered in the current betting round
func (p *SeatedPlayer) CurrentBet() int {
	return p.bet.Amount()
}

// Status returns the player's status
func (p *SeatedPlayer) Status() Status {
	return p.status
}

// IsLive returns true if the player has not folded
func (p *SeatedPlayer) IsLive() bool {
	return p.status != StatusFolded
}

// Bet moves up to amount from the player's balance into their current bet.
// A player who cannot cover the amount is put all-in with what remains; the
// value returned is what was actually wagered.
func (p *SeatedPlayer) Bet(amount int) (int, error) {
	taken, err := p.balance.DebitUpTo(amount)
	if err != nil {
		return 0, err
	}

	if taken > 0 {
		if err := p.bet.Credit(taken); err != nil {
			return 0, err
		}
	}

	return taken, nil
}

// Fold takes the player out of the hand
func (p *SeatedPlayer) Fold() {
	p.status = StatusFolded
}

// Win credits the player's balance with their share of the pot
func (p *SeatedPlayer) Win(amount int) error {
	return p.balance.Credit(amount)
}

// NewRound resets the player's bet for the next betting round
func (p *SeatedPlayer) NewRound() {
	bet, _ := chips.NewLedger(0)
	p.bet = bet
}
