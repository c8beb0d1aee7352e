package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_AddCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("2c"))

	a.Equal(2, hand.Len())
	a.True(hand.HasCard(CardFromString("14s")))
	a.False(hand.HasCard(CardFromString("14h")))
	a.Equal("14s,2c", hand.String())
}

func TestHand_Discard(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c,14s"))
	a.Equal(2, hand.Discard(CardFromString("14s")))
	a.Equal("2c", hand.String())
	a.Equal(0, hand.Discard(CardFromString("14s")))
}

func TestHand_FirstCardLastCard(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())

	hand = CardsFromString("14s,2c,9h")
	a.True(hand.FirstCard().Equal(CardFromString("14s")))
	a.True(hand.LastCard().Equal(CardFromString("9h")))
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("14s,2c"))
	clone := hand.Clone()
	clone.AddCard(CardFromString("9h"))

	a.Equal(2, hand.Len())
	a.Equal(3, clone.Len())
}

func TestNewCommunity(t *testing.T) {
	a := assert.New(t)

	_, err := NewCommunity(CardsFromString("2c,3c"))
	a.EqualError(err, "hand must have between 3 and 5 cards, got 2")

	for _, s := range []string{"2c,3c,4c", "2c,3c,4c,5c", "2c,3c,4c,5c,6c"} {
		community, err := NewCommunity(CardsFromString(s))
		a.NoError(err)
		a.NotNil(community)
	}

	_, err = NewCommunity(CardsFromString("2c,3c,4c,5c,6c,7c"))
	a.EqualError(err, "hand must have between 3 and 5 cards, got 6")
}

func TestNewShowdownHand(t *testing.T) {
	a := assert.New(t)

	_, err := NewShowdownHand(CardsFromString("2c"))
	a.EqualError(err, "hand must have between 2 and 7 cards, got 1")

	hand, err := NewShowdownHand(CardsFromString("2c,3c"))
	a.NoError(err)
	a.Equal(2, hand.Len())

	hand, err = NewShowdownHand(CardsFromString("2c,3c,4c,5c,6c,7c,8c"))
	a.NoError(err)
	a.Equal(7, hand.Len())

	_, err = NewShowdownHand(CardsFromString("2c,3c,4c,5c,6c,7c,8c,9c"))
	a.EqualError(err, "hand must have between 2 and 7 cards, got 8")

	_, err = NewShowdownHand([]*Card{CardFromString("2c"), nil})
	a.EqualError(err, "card at index 1 is nil")
}
