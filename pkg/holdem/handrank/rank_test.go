package handrank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rivercard-server/pkg/deck"
)

func rank(t *testing.T, cards string) *Rank {
	t.Helper()

	r, err := Evaluate(deck.CardsFromString(cards))
	if err != nil {
		t.Fatalf("could not evaluate %s: %v", cards, err)
	}

	return r
}

func TestEvaluate_categories(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		cards    string
		category Category
		tieBreak []int
	}{
		{"14h,13h,12h,11h,10h,2s,3c", RoyalFlush, []int{}},
		{"9h,8h,7h,6h,5h,2s,3c", StraightFlush, []int{9}},
		{"14s,2s,3s,4s,5s,9h,10d", StraightFlush, []int{5}},
		{"9c,9d,9h,9s,13d,2s,3c", FourOfAKind, []int{9, 13}},
		{"9c,9d,9h,5s,5d,2s,3c", FullHouse, []int{9, 5}},
		{"9c,9d,9h,5s,5d,5c,3c", FullHouse, []int{9, 5}},
		{"14h,10h,8h,4h,2h,9s,9c", Flush, []int{14, 10, 8, 4, 2}},
		{"9c,8d,7h,6s,5c,13d,2s", Straight, []int{9}},
		{"14c,2d,3h,4s,5c,9d,13s", Straight, []int{5}},
		{"9c,9d,9h,13s,5d,2s,3c", ThreeOfAKind, []int{9, 13, 5}},
		{"2s,2h,5d,9c,9h,13d,3s", TwoPair, []int{9, 2, 13}},
		{"9c,9d,13s,5d,2s,3c,7h", OnePair, []int{9, 13, 7, 5}},
		{"14s,10d,8c,6h,4s,3c,2d", HighCard, []int{14, 10, 8, 6, 4}},
		{"14s,2c", HighCard, []int{14, 2}},
		{"9s,9c", OnePair, []int{9}},
	}

	for _, test := range tests {
		r := rank(t, test.cards)
		a.Equal(test.category, r.Category(), "category for %s", test.cards)
		a.Equal(test.tieBreak, r.TieBreak(), "tie-break for %s", test.cards)
	}
}

func TestEvaluate_multiDeckShoe(t *testing.T) {
	a := assert.New(t)

	// duplicated cards from a second deck can put a flush and quads (or a
	// full house) in the same hand; the flush check runs first and wins
	quads := rank(t, "9h,9h,5h,6h,7h,9s,9c")
	a.Equal(Flush, quads.Category())
	a.Equal([]int{9, 9, 7, 6, 5}, quads.TieBreak())

	boat := rank(t, "13h,13h,5h,6h,7h,13s,5c")
	a.Equal(Flush, boat.Category())
	a.Equal([]int{13, 13, 7, 6, 5}, boat.TieBreak())

	// a duplicated rank does not break straight detection
	straight := rank(t, "10c,9d,9h,8s,7c,6d,2s")
	a.Equal(Straight, straight.Category())
	a.Equal([]int{10}, straight.TieBreak())
}

func TestEvaluate_badSize(t *testing.T) {
	a := assert.New(t)

	_, err := Evaluate(deck.CardsFromString("2c"))
	a.Error(err)

	_, err = Evaluate(deck.CardsFromString("2c,3c,4c,5c,6c,7c,8c,9c"))
	a.Error(err)
}

func TestCategory_ordering(t *testing.T) {
	a := assert.New(t)

	a.Equal(Category(1), HighCard)
	a.Equal(Category(10), RoyalFlush)

	// every category beats the one below it
	hands := []string{
		"14s,10d,8c,6h,4s,3c,2d",
		"9c,9d,13s,5d,2s,3c,7h",
		"2s,2h,5d,9c,9h,13d,3s",
		"9c,9d,9h,13s,5d,2s,3c",
		"9c,8d,7h,6s,5c,13d,2s",
		"14h,10h,8h,4h,2h,9s,7c",
		"9c,9d,9h,5s,5d,2s,3c",
		"9c,9d,9h,9s,13d,2s,3c",
		"9h,8h,7h,6h,5h,2s,3c",
		"14h,13h,12h,11h,10h,2s,3c",
	}

	prev := 0
	for _, cards := range hands {
		strength := rank(t, cards).Strength()
		a.Greater(strength, prev, "strength for %s", cards)
		prev = strength
	}
}

func TestRank_Strength_kickers(t *testing.T) {
	a := assert.New(t)

	// same two pair, kicker decides
	king := rank(t, "2s,2h,9c,9h,13d,5d,3s")
	queen := rank(t, "2c,2d,9d,9s,12d,5c,3c")
	a.Greater(king.Strength(), queen.Strength())

	// identical hands are an exact tie
	other := rank(t, "2c,2d,9d,9s,13s,5c,3c")
	a.Equal(king.Strength(), other.Strength())

	// higher pair beats a better kicker
	nines := rank(t, "9c,9d,13s,5d,2s,3c,7h")
	eights := rank(t, "8c,8d,14s,5h,2c,3d,7s")
	a.Greater(nines.Strength(), eights.Strength())
}

func TestResolveWinners(t *testing.T) {
	a := assert.New(t)

	// King kicker wins between otherwise identical two pairs
	winners := ResolveWinners(map[int64]*Rank{
		1: rank(t, "2s,2h,9c,9h,13d,5d,3s"),
		2: rank(t, "2c,2d,9d,9s,12d,5c,3c"),
	})
	a.Equal([]int64{1}, winners)

	// exact ties keep every matching player
	winners = ResolveWinners(map[int64]*Rank{
		1: rank(t, "2s,2h,9c,9h,13d,5d,3s"),
		2: rank(t, "2c,2d,9d,9s,13s,5c,3c"),
		3: rank(t, "14s,10d,8c,6h,4s,3c,2d"),
	})
	a.Equal([]int64{1, 2}, winners)

	// category always beats kickers
	winners = ResolveWinners(map[int64]*Rank{
		7: rank(t, "9c,8d,7h,6s,5c,13d,2s"),
		8: rank(t, "14c,14d,14s,13s,13c,5c,3c"),
	})
	a.Equal([]int64{8}, winners)

	a.Empty(ResolveWinners(nil))
}

func TestCategory_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("High card", HighCard.String())
	a.Equal("Two pair", TwoPair.String())
	a.Equal("Royal flush", RoyalFlush.String())
	a.Panics(func() { _ = Category(0).String() })
}
