package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_DisplayName(t *testing.T) {
	a := assert.New(t)

	a.Equal("As de coeur", CardFromString("14h").DisplayName())
	a.Equal("Roi de pique", CardFromString("13s").DisplayName())
	a.Equal("Dame de carreau", CardFromString("12d").DisplayName())
	a.Equal("Valet de trefle", CardFromString("11c").DisplayName())
	a.Equal("10 de pique", CardFromString("10s").DisplayName())
	a.Equal("2 de coeur", CardFromString("2h").DisplayName())
}

func TestCardFromDisplayName(t *testing.T) {
	a := assert.New(t)

	card, err := CardFromDisplayName("As de coeur")
	a.NoError(err)
	a.True(card.Equal(CardFromString("14h")))

	// suit is case-insensitive
	card, err = CardFromDisplayName("Roi de Pique")
	a.NoError(err)
	a.True(card.Equal(CardFromString("13s")))

	card, err = CardFromDisplayName("10 de CARREAU")
	a.NoError(err)
	a.True(card.Equal(CardFromString("10d")))

	_, err = CardFromDisplayName("As of hearts")
	a.Error(err)

	_, err = CardFromDisplayName("Prince de coeur")
	a.Error(err)

	_, err = CardFromDisplayName("As de etoile")
	a.Error(err)
}

func TestCard_DisplayName_roundTrip(t *testing.T) {
	a := assert.New(t)

	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			card, err := NewCard(rank, suit)
			a.NoError(err)

			parsed, err := CardFromDisplayName(card.DisplayName())
			a.NoError(err)
			a.True(card.Equal(parsed))
		}
	}
}
