// Command generate-config prints the default configuration as YAML.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"rivercard-server/internal/config"
)

func main() {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()

	if err := enc.Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
