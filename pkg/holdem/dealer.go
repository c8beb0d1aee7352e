package holdem

import (
	"rivercard-server/pkg/deck"
)

// community card counts
const (
	flopSize  = 3
	turnSize  = 1
	riverSize = 1
)

// Dealer draws cards from a single shared deck.
// Every deal is destructive on the deck; the dealer holds no other state.
type Dealer struct {
	deck *deck.Deck
}

// NewDealer returns a dealer for the deck
func NewDealer(d *deck.Deck) *Dealer {
	return &Dealer{deck: d}
}

// DealHoleCards deals count cards to each player, one card to every player
// per pass. The round-robin order matters for fairness and must be kept.
func (d *Dealer) DealHoleCards(players []*SeatedPlayer, count int) error {
	for i := 0; i < count; i++ {
		for _, player := range players {
			card, err := d.deck.Draw()
			if err != nil {
				return err
			}

			player.cards.AddCard(card)
		}
	}

	return nil
}

// DealFlop draws the three flop cards
func (d *Dealer) DealFlop() ([]*deck.Card, error) {
	return d.drawCommunity(flopSize)
}

// DealTurn draws the turn card
func (d *Dealer) DealTurn() (*deck.Card, error) {
	cards, err := d.drawCommunity(turnSize)
	if err != nil {
		return nil, err
	}

	return cards[0], nil
}

// DealRiver draws the river card
func (d *Dealer) DealRiver() (*deck.Card, error) {
	cards, err := d.drawCommunity(riverSize)
	if err != nil {
		return nil, err
	}

	return cards[0], nil
}

// CardsLeft returns the number of cards remaining in the deck
func (d *Dealer) CardsLeft() int {
	return d.deck.CardsLeft()
}

func (d *Dealer) drawCommunity(count int) ([]*deck.Card, error) {
	if !d.deck.CanDraw(count) {
		return nil, deck.ErrEndOfDeck
	}

	cards := make([]*deck.Card, count)
	for i := 0; i < count; i++ {
		card, err := d.deck.Draw()
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}
