// Command server runs the card room HTTP server.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"rivercard-server/internal/config"
	"rivercard-server/internal/mux"
	"rivercard-server/pkg/db"
	"rivercard-server/pkg/room"
	"rivercard-server/pkg/table"
)

// Version is the server version and is set at compile time
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the address the server will listen on")

func main() {
	flag.Parse()
	setupLogger()

	logrus.WithField("version", Version).Info("starting server")

	cfg := config.Instance()

	dbh, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the database")
	}

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	store := table.NewStore(dbh)
	floor := room.NewFloor(logrus.StandardLogger())

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Content-Type"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	var handler http.Handler = c.Handler(mux.NewMux(Version, store, floor))
	if !cfg.Log.DisableAccessLogs {
		handler = handlers.CombinedLoggingHandler(os.Stdout, handler)
	}

	server := http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 10,
	}

	logrus.WithField("addr", *addr).Info("listening")
	logrus.Fatal(server.ListenAndServe())
}

func setupLogger() {
	if level, err := logrus.ParseLevel(config.Instance().Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
