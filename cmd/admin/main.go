// Command admin performs administrative actions against the database.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"rivercard-server/internal/config"
	"rivercard-server/pkg/db"
	"rivercard-server/pkg/table"
)

var command = flag.String("c", "", "the command to run (player, credit)")

func main() {
	flag.Parse()

	cfg := config.Instance()

	dbh, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the database")
	}

	store := table.NewStore(dbh)

	switch *command {
	case "player":
		createPlayer(store)
	case "credit":
		adjustCredit(store)
	default:
		fmt.Fprintln(os.Stderr, "usage: admin -c [player|credit]")
		os.Exit(1)
	}
}

func createPlayer(store *table.Store) {
	displayName := prompt("Display name")
	if displayName == "" {
		logrus.Fatal("display name is required")
	}

	credit := config.Instance().Game.StartingCredit
	if value := prompt(fmt.Sprintf("Starting credit [%d]", credit)); value != "" {
		var err error
		if credit, err = strconv.Atoi(value); err != nil {
			logrus.WithError(err).Fatal("invalid credit")
		}
	}

	player, err := store.CreatePlayer(context.Background(), displayName, credit)
	if err != nil {
		logrus.WithError(err).Fatal("could not create player")
	}

	fmt.Printf("created player %d (%s) with %d credit\n", player.ID, player.DisplayName, player.Credit)
}

func adjustCredit(store *table.Store) {
	playerID, err := strconv.ParseInt(prompt("Player ID"), 10, 64)
	if err != nil {
		logrus.WithError(err).Fatal("invalid player id")
	}

	delta, err := strconv.Atoi(prompt("Credit adjustment (negative to debit)"))
	if err != nil {
		logrus.WithError(err).Fatal("invalid adjustment")
	}

	if err := store.AdjustCredit(context.Background(), playerID, delta); err != nil {
		logrus.WithError(err).Fatal("could not adjust credit")
	}

	player, err := store.GetPlayerByID(context.Background(), playerID)
	if err != nil {
		logrus.WithError(err).Fatal("could not load player")
	}

	fmt.Printf("player %d now has %d credit\n", player.ID, player.Credit)
}

func prompt(label string) string {
	fmt.Printf("%s: ", label)

	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		logrus.WithError(err).Fatal("could not read input")
	}

	return strings.TrimSpace(value)
}
