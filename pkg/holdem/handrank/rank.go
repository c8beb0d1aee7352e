// Package handrank evaluates showdown hands of 2-7 cards into ranked categories.
package handrank

import (
	"math"
	"sort"

	"rivercard-server/pkg/deck"
)

// handSize is the number of cards in a made poker hand
const handSize = 5

// Rank is the result of evaluating a showdown hand.
// Ranks are totally ordered: compare categories first, then the
// category-specific tie-break ranks (pairs before kickers).
type Rank struct {
	category Category
	tieBreak []int
	strength int
}

// Evaluate returns the rank of a 2-7 card showdown hand
func Evaluate(cards []*deck.Card) (*Rank, error) {
	hand, err := deck.NewShowdownHand(cards)
	if err != nil {
		return nil, err
	}

	sorted := hand.Clone()
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	a := analyze(sorted)
	category, tieBreak := a.best()

	return &Rank{
		category: category,
		tieBreak: tieBreak,
	}, nil
}

// Category returns the hand category
func (r *Rank) Category() Category {
	return r.category
}

// TieBreak returns the tie-break ranks, strongest first
func (r *Rank) TieBreak() []int {
	tb := make([]int, len(r.tieBreak))
	copy(tb, r.tieBreak)

	return tb
}

func (r *Rank) String() string {
	return r.category.String()
}

// Strength packs the category and tie-break ranks into a single integer.
// A greater strength always identifies the better hand, and two hands of
// equal strength are an exact tie.
func (r *Rank) Strength() int {
	if r.strength > 0 {
		return r.strength
	}

	fiveCards := make([]int, handSize)
	copy(fiveCards, r.tieBreak)

	strength := math.Pow(15, handSize) * float64(r.category)
	for i := 0; i < handSize; i++ {
		strength += math.Pow(15, float64(i)) * float64(fiveCards[handSize-1-i])
	}

	r.strength = int(strength)
	return r.strength
}

// ResolveWinners returns the ids of the players holding the strongest hand,
// in ascending id order. More than one id is returned only when the top
// hands remain exactly tied after the full kicker comparison.
func ResolveWinners(ranks map[int64]*Rank) []int64 {
	best := 0
	winners := make([]int64, 0, 1)

	for id, rank := range ranks {
		s := rank.Strength()
		if s > best {
			best = s
			winners = append(winners[:0], id)
		} else if s == best {
			winners = append(winners, id)
		}
	}

	sort.Slice(winners, func(i, j int) bool { return winners[i] < winners[j] })
	return winners
}

// analysis holds the combinations found in a hand
type analysis struct {
	// cards are sorted by rank, descending
	cards         deck.Hand
	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straight      int
	straightFlush int
}

func analyze(cards deck.Hand) *analysis {
	a := &analysis{cards: cards}
	a.checkFlush()
	a.checkStraights()
	a.checkPairs()

	return a
}

// best picks the strongest category, checked from the top down
func (a *analysis) best() (Category, []int) {
	if a.straightFlush == deck.Ace {
		return RoyalFlush, nil
	}

	if a.straightFlush > 0 {
		return StraightFlush, []int{a.straightFlush}
	}

	// flush and straight are checked ahead of the frequency categories.
	// With a single deck and at most seven cards the order cannot matter
	// (no hand holds both a flush and quads or a full house), but a
	// multi-deck shoe can, and then the suit-based category wins.
	if a.flush != nil {
		return Flush, a.flush
	}

	if a.straight > 0 {
		return Straight, []int{a.straight}
	}

	if len(a.quads) > 0 {
		return FourOfAKind, append([]int{a.quads[0]}, a.kickers(1, a.quads[0])...)
	}

	if fh := a.fullHouse(); fh != nil {
		return FullHouse, fh
	}

	if len(a.trips) > 0 {
		return ThreeOfAKind, append([]int{a.trips[0]}, a.kickers(2, a.trips[0])...)
	}

	if len(a.pairs) >= 2 {
		return TwoPair, append([]int{a.pairs[0], a.pairs[1]}, a.kickers(1, a.pairs[0], a.pairs[1])...)
	}

	if len(a.pairs) == 1 {
		return OnePair, append([]int{a.pairs[0]}, a.kickers(3, a.pairs[0])...)
	}

	return HighCard, a.kickers(handSize)
}

// kickers returns up to n card ranks, strongest first, skipping the excluded ranks
func (a *analysis) kickers(n int, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		excluded[rank] = true
	}

	kickers := make([]int, 0, n)
	for _, card := range a.cards {
		if excluded[card.Rank] {
			continue
		}

		kickers = append(kickers, card.Rank)
		if len(kickers) == n {
			break
		}
	}

	return kickers
}

func (a *analysis) fullHouse() []int {
	if len(a.trips) == 0 {
		return nil
	}

	pair := 0
	if len(a.pairs) > 0 {
		pair = a.pairs[0]
	}

	// an 6+ card hand can hold two sets of trips; the second set makes the better pair
	if len(a.trips) >= 2 && a.trips[1] > pair {
		pair = a.trips[1]
	}

	if pair == 0 {
		return nil
	}

	return []int{a.trips[0], pair}
}

func (a *analysis) checkFlush() {
	suitRanks := make(map[deck.Suit][]int)
	for _, card := range a.cards {
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
	}

	for _, ranks := range suitRanks {
		if len(ranks) >= handSize {
			a.flush = ranks[0:handSize]
			return
		}
	}
}

func (a *analysis) checkStraights() {
	suitRanks := make(map[deck.Suit][]int)
	allRanks := make([]int, 0, len(a.cards))
	seen := make(map[int]bool)

	for _, card := range a.cards {
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)

		if !seen[card.Rank] {
			seen[card.Rank] = true
			allRanks = append(allRanks, card.Rank)
		}
	}

	a.straight = bestRun(allRanks)

	for _, ranks := range suitRanks {
		if run := bestRun(ranks); run > a.straightFlush {
			a.straightFlush = run
		}
	}
}

// bestRun returns the high rank of the best run of five consecutive ranks,
// or 0 if there is none. The ranks must be sorted descending.
// An ace also counts low for the wheel (5-4-3-2-A).
func bestRun(ranks []int) int {
	if len(ranks) > 0 && ranks[0] == deck.HighAce {
		ranks = append(ranks, deck.LowAce)
	}

	run := 1
	for i := 1; i < len(ranks); i++ {
		// skip duplicate ranks from a multi-deck shoe
		if ranks[i] == ranks[i-1] {
			continue
		}

		if ranks[i] == ranks[i-1]-1 {
			run++
			if run == handSize {
				return ranks[i] + handSize - 1
			}
		} else {
			run = 1
		}
	}

	return 0
}

func (a *analysis) checkPairs() {
	counts := make(map[int]int)
	ranks := make([]int, 0, len(a.cards))

	for _, card := range a.cards {
		if counts[card.Rank] == 0 {
			ranks = append(ranks, card.Rank)
		}

		counts[card.Rank]++
	}

	for _, rank := range ranks {
		count := counts[rank]
		if count > 4 {
			// only possible with a multi-deck shoe
			count = 4
		}

		switch count {
		case 4:
			a.quads = append(a.quads, rank)
		case 3:
			a.trips = append(a.trips, rank)
		case 2:
			a.pairs = append(a.pairs, rank)
		}
	}
}
