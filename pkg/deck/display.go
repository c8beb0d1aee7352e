package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// The table display format is the legacy French card notation, i.e. "As de coeur".
// Consumers round-trip cards through this format, so it must be preserved bit-exact.

var displayRanks = map[int]string{
	Jack:  "Valet",
	Queen: "Dame",
	King:  "Roi",
	Ace:   "As",
}

var displaySuits = map[Suit]string{
	Spades:   "pique",
	Diamonds: "carreau",
	Hearts:   "coeur",
	Clubs:    "trefle",
}

// DisplayName renders the card in the table display format, e.g. "As de coeur"
// The suit is always lowercased.
func (c *Card) DisplayName() string {
	rank, ok := displayRanks[c.Rank]
	if !ok {
		rank = strconv.Itoa(c.Rank)
	}

	suit, ok := displaySuits[c.Suit]
	if !ok {
		panic("unknown suit")
	}

	return fmt.Sprintf("%s de %s", rank, suit)
}

// CardFromDisplayName parses a card in the "<rank> de <suit>" display format.
// The suit and rank names are matched case-insensitively.
func CardFromDisplayName(s string) (*Card, error) {
	parts := strings.SplitN(s, " de ", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	var rank int
	switch strings.ToLower(strings.TrimSpace(parts[0])) {
	case "valet":
		rank = Jack
	case "dame":
		rank = Queen
	case "roi":
		rank = King
	case "as":
		rank = Ace
	default:
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("could not parse rank: %s", parts[0])
		}

		rank = n
	}

	var suit Suit
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "pique":
		suit = Spades
	case "carreau":
		suit = Diamonds
	case "coeur":
		suit = Hearts
	case "trefle":
		suit = Clubs
	default:
		return nil, fmt.Errorf("could not parse suit: %s", parts[1])
	}

	return NewCard(rank, suit)
}
