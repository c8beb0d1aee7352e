// Command migrate waits for the database and applies the schema migrations.
package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"rivercard-server/internal/config"
	"rivercard-server/pkg/db"
)

const waitForDBTimeout = time.Second * 10

func main() {
	cfg := config.Instance()

	dbh, err := db.Connect(cfg.PGDSN)

	deadline := time.Now().Add(waitForDBTimeout)
	for err != nil {
		if time.Now().After(deadline) {
			logrus.WithError(err).Fatal("could not connect to the database")
		}

		logrus.WithError(err).Warn("waiting for the database")
		time.Sleep(time.Second)
		dbh, err = db.Connect(cfg.PGDSN)
	}

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}
