// Package holdem runs single hands of Texas Hold'em: it seats players,
// deals, collects bets into the pot, and resolves the showdown.
package holdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rivercard-server/pkg/chips"
	"rivercard-server/pkg/deck"
	"rivercard-server/pkg/holdem/handrank"
)

// PlayerInfo describes a player to seat for a hand
type PlayerInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Credit int    `json:"credit"`
}

// Options configures a hand of Texas Hold'em
type Options struct {
	SmallBlind int
	BigBlind   int
	// DeckCount is the number of 52-card decks in the shoe; 0 means one deck
	DeckCount int
	// Seed is the shuffle seed; 0 means a time-based seed
	Seed int64
}

// DefaultOptions returns the default options for a hand
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
		DeckCount:  1,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be greater than zero")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind cannot be less than the small blind")
	}

	if opts.DeckCount < 0 {
		return errors.New("deck count cannot be negative")
	}

	if opts.Seed < 0 {
		return errors.New("seed cannot be negative")
	}

	return nil
}

// Hand orchestrates one complete hand of Texas Hold'em.
// A Hand is single-use: construct it, call Run() once, then read the results.
// The deck, pot, and per-player state are exclusively owned by the hand;
// callers wanting concurrent tables must use independent Hand instances.
type Hand struct {
	logger  logrus.FieldLogger
	options Options

	table  *Table
	dealer *Dealer
	pot    *chips.Pot

	// players in seating order
	players     []*SeatedPlayer
	playersByID map[int64]*SeatedPlayer

	community    deck.Hand
	transactions []*Transaction
	rankings     map[int64]*handrank.Rank
	winners      []*SeatedPlayer
	phase        Phase
}

// NewHand seats the players at a new table and returns a hand ready to run.
// Each player's round balance is seeded from their persisted credit.
func NewHand(logger logrus.FieldLogger, players []PlayerInfo, opts Options) (*Hand, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	table, err := NewTable(len(players))
	if err != nil {
		return nil, err
	}

	seated := make([]*SeatedPlayer, len(players))
	byID := make(map[int64]*SeatedPlayer, len(players))
	for i, info := range players {
		if _, found := byID[info.ID]; found {
			return nil, fmt.Errorf("player %d is already seated", info.ID)
		}

		seat, err := table.SeatPlayer(info.ID)
		if err != nil {
			return nil, err
		}

		player, err := newSeatedPlayer(info.ID, info.Name, info.Credit, seat)
		if err != nil {
			return nil, err
		}

		seated[i] = player
		byID[info.ID] = player
	}

	deckCount := opts.DeckCount
	if deckCount == 0 {
		deckCount = 1
	}

	d := deck.NewMultiple(deckCount)
	d.Shuffle(opts.Seed)

	return &Hand{
		logger:      logger,
		options:     opts,
		table:       table,
		dealer:      NewDealer(d),
		pot:         chips.NewPot(),
		players:     seated,
		playersByID: byID,
		community:   make(deck.Hand, 0, 5),
		phase:       PhaseInit,
	}, nil
}

// Run plays the hand from blinds through showdown.
// A deal failure or an insufficient player count aborts the hand; a player
// who cannot cover a bet is simply put all-in instead.
func (h *Hand) Run() error {
	if h.phase != PhaseInit {
		return ErrHandFinished
	}

	h.phase = PhaseBlinds
	if err := h.postBlinds(); err != nil {
		return err
	}

	h.phase = PhasePreFlop
	if err := h.preFlop(); err != nil {
		return err
	}

	h.phase = PhaseFlop
	if err := h.dealFlop(); err != nil {
		return err
	}

	h.phase = PhaseTurn
	if err := h.dealTurnOrRiver(h.dealer.DealTurn); err != nil {
		return err
	}

	h.phase = PhaseRiver
	if err := h.dealTurnOrRiver(h.dealer.DealRiver); err != nil {
		return err
	}

	h.phase = PhaseShowdown
	if err := h.showdown(); err != nil {
		return err
	}

	h.phase = PhaseFinished
	return nil
}

func (h *Hand) postBlinds() error {
	live := h.livePlayers()
	if len(live) < 2 {
		return ErrNotEnoughPlayers
	}

	// the last two players in seating order post the blinds
	small := live[len(live)-2]
	big := live[len(live)-1]

	if err := h.collectBet(small, h.options.SmallBlind); err != nil {
		return err
	}

	if err := h.collectBet(big, h.options.BigBlind); err != nil {
		return err
	}

	h.logger.WithFields(logrus.Fields{
		"smallBlind": small.PlayerID,
		"bigBlind":   big.PlayerID,
		"pot":        h.pot.Amount(),
	}).Debug("blinds posted")

	h.newBettingRound()
	return nil
}

// preFlop deals two hole cards to each live player. Folded players are
// skipped entirely so they never consume cards from the deal order.
func (h *Hand) preFlop() error {
	if err := h.dealer.DealHoleCards(h.livePlayers(), 2); err != nil {
		return err
	}

	return h.bettingRound()
}

func (h *Hand) dealFlop() error {
	cards, err := h.dealer.DealFlop()
	if err != nil {
		return err
	}

	for _, card := range cards {
		h.community.AddCard(card)
	}

	h.logger.WithField("community", h.community.String()).Debug("flop dealt")
	return h.bettingRound()
}

func (h *Hand) dealTurnOrRiver(deal func() (*deck.Card, error)) error {
	card, err := deal()
	if err != nil {
		return err
	}

	h.community.AddCard(card)

	h.logger.WithField("community", h.community.String()).Debug("community card dealt")
	return h.bettingRound()
}

// bettingRound is the simplified one-pass betting protocol: every live
// player is charged the big blind, going all-in if they cannot cover it.
func (h *Hand) bettingRound() error {
	for _, player := range h.players {
		if !player.IsLive() {
			continue
		}

		if err := h.collectBet(player, h.options.BigBlind); err != nil {
			return err
		}
	}

	h.newBettingRound()
	return nil
}

func (h *Hand) newBettingRound() {
	for _, player := range h.players {
		player.NewRound()
	}
}

// collectBet moves up to amount from the player into the pot and records a
// debit transaction for what was actually wagered
func (h *Hand) collectBet(player *SeatedPlayer, amount int) error {
	taken, err := player.Bet(amount)
	if err != nil {
		return err
	}

	if taken == 0 {
		// the player was already all-in
		return nil
	}

	if err := h.pot.Add(taken); err != nil {
		return err
	}

	tx, err := NewTransaction(player.PlayerID, -taken)
	if err != nil {
		return err
	}

	h.transactions = append(h.transactions, tx)
	return nil
}

func (h *Hand) showdown() error {
	ranks := make(map[int64]*handrank.Rank)
	for _, player := range h.players {
		if !player.IsLive() {
			continue
		}

		cards := append(player.cards.Clone(), h.community...)
		rank, err := handrank.Evaluate(cards)
		if err != nil {
			return err
		}

		ranks[player.PlayerID] = rank
	}

	winnerIDs := handrank.ResolveWinners(ranks)
	if len(winnerIDs) == 0 {
		return errors.New("no live players at showdown")
	}

	winners := make([]*SeatedPlayer, len(winnerIDs))
	for i, id := range winnerIDs {
		winners[i] = h.playersByID[id]
	}

	// the remainder chip(s) of a split pot go to the earliest-seated winner
	sortBySeat(winners)

	total := h.pot.Payout()
	share := total / len(winners)
	remainder := total % len(winners)

	for i, winner := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}

		if amount == 0 {
			continue
		}

		if err := winner.Win(amount); err != nil {
			return err
		}

		tx, err := NewTransaction(winner.PlayerID, amount)
		if err != nil {
			return err
		}

		h.transactions = append(h.transactions, tx)
	}

	h.rankings = ranks
	h.winners = winners

	h.logger.WithFields(logrus.Fields{
		"winners": winnerIDs,
		"pot":     total,
		"hand":    ranks[winnerIDs[0]].String(),
	}).Info("hand won")

	return nil
}

func (h *Hand) livePlayers() []*SeatedPlayer {
	live := make([]*SeatedPlayer, 0, len(h.players))
	for _, player := range h.players {
		if player.IsLive() {
			live = append(live, player)
		}
	}

	return live
}

func sortBySeat(players []*SeatedPlayer) {
	for i := 1; i < len(players); i++ {
		for j := i; j > 0 && players[j].seat.Position < players[j-1].seat.Position; j-- {
			players[j], players[j-1] = players[j-1], players[j]
		}
	}
}

// Phase returns the hand's current phase
func (h *Hand) Phase() Phase {
	return h.phase
}

// Pot returns the chips currently in the pot.
// After a completed hand this is always zero; the pot is drained at showdown.
func (h *Hand) Pot() int {
	return h.pot.Amount()
}

// Community returns the revealed community cards
func (h *Hand) Community() deck.Hand {
	return h.community.Clone()
}

// Players returns every seated player in seating order
func (h *Hand) Players() []*SeatedPlayer {
	players := make([]*SeatedPlayer, len(h.players))
	copy(players, h.players)
	return players
}

// Player returns the seated player with the given id
func (h *Hand) Player(id int64) (*SeatedPlayer, bool) {
	player, found := h.playersByID[id]
	return player, found
}

// Winners returns the hand's winners in seat order, or nil before showdown
func (h *Hand) Winners() []*SeatedPlayer {
	return h.winners
}

// Rankings returns each live player's showdown rank, or nil before showdown
func (h *Hand) Rankings() map[int64]*handrank.Rank {
	return h.rankings
}

// Transactions returns every chip movement recorded during the hand
func (h *Hand) Transactions() []*Transaction {
	return h.transactions
}
