package chips

// Pot accumulates the chips wagered during a single hand.
// It is created empty, grows with each contribution, and is fully drained
// to the winner(s) at showdown.
type Pot struct {
	ledger Ledger
}

// NewPot returns an empty pot
func NewPot() *Pot {
	return &Pot{}
}

// Add contributes chips to the pot
func (p *Pot) Add(amount int) error {
	return p.ledger.Credit(amount)
}

// Amount returns the chips currently in the pot
func (p *Pot) Amount() int {
	return p.ledger.Amount()
}

// Payout drains the pot and returns the total
func (p *Pot) Payout() int {
	amount := p.ledger.Amount()
	p.ledger.amount = 0

	return amount
}
