package holdem

import "errors"

// ErrNotEnoughPlayers is an error when a hand is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("cannot start a hand with fewer than two players")

// ErrHandFinished is an error when an action is attempted on a finished hand
var ErrHandFinished = errors.New("hand is already finished")

// ErrTableFull is an error when a player is seated at a full table
var ErrTableFull = errors.New("table is full")

// ErrTransactionDecided is an error when an approved or rejected transaction is decided again
var ErrTransactionDecided = errors.New("transaction has already been decided")
