// Package config loads the server configuration from a YAML file with
// environment variable overrides.
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"rivercard-server/internal/util"
)

// Config provides configuration for the card room server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game struct {
		StartingCredit int `yaml:"startingCredit" envconfig:"starting_credit"`
		SmallBlind     int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind       int `yaml:"bigBlind" envconfig:"big_blind"`
		DeckCount      int `yaml:"deckCount" envconfig:"deck_count"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Game.StartingCredit = 1000
	c.Game.SmallBlind = 10
	c.Game.BigBlind = 20
	c.Game.DeckCount = 1

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and environment apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("RC_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("rc", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
