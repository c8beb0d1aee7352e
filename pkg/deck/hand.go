package deck

import (
	"fmt"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	if h[i].Suit != h[j].Suit {
		return h[i].Suit < h[j].Suit
	}

	return h[i].Rank < h[j].Rank
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// HasCard returns true if the hand contains the specified card
func (h *Hand) HasCard(card *Card) bool {
	for _, c := range *h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// Discard will discard the specified card and return the number of copies removed
func (h *Hand) Discard(card *Card) int {
	count := 0
	newHand := make([]*Card, 0, len(*h))
	for _, c := range *h {
		if c.Equal(card) {
			count++
		} else {
			newHand = append(newHand, c)
		}
	}

	*h = newHand
	return count
}

// FirstCard returns the first card in the hand or nil if the cards are empty
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// size limits for the specialized hands
const (
	minCommunitySize = 3
	maxCommunitySize = 5
	minShowdownSize  = 2
	maxShowdownSize  = 7
)

// newBoundedHand validates the cards and enforces a size range
func newBoundedHand(cards []*Card, min, max int) (Hand, error) {
	if len(cards) < min || len(cards) > max {
		return nil, fmt.Errorf("hand must have between %d and %d cards, got %d", min, max, len(cards))
	}

	hand := make(Hand, len(cards))
	for i, card := range cards {
		if card == nil {
			return nil, fmt.Errorf("card at index %d is nil", i)
		}

		hand[i] = card
	}

	return hand, nil
}

// NewCommunity returns the 3-5 community cards revealed during a hand
func NewCommunity(cards []*Card) (Hand, error) {
	return newBoundedHand(cards, minCommunitySize, maxCommunitySize)
}

// NewShowdownHand returns the 2-7 cards a player brings to showdown
// (hole cards plus any revealed community cards)
func NewShowdownHand(cards []*Card) (Hand, error) {
	return newBoundedHand(cards, minShowdownSize, maxShowdownSize)
}
