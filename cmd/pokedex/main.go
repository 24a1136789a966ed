// @title Pokedex API
// @version 2.0
// @description Catalog of Pokemons seeded from the PokeAPI
// @BasePath /api/v2
package main

import (
	"fmt"
	"os"

	"pokedex/config"
	v2 "pokedex/routes/v2"
	"pokedex/utils/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is set with ldflags at build time
var version = "dev"

func main() {
	v2.ConfigureBinding()

	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokedex catalog API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(setup),
		newSeedCmd(setup),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger it describes
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
