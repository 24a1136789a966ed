package main

import (
	"fmt"

	"pokedex/app"
	"pokedex/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSeedCmd(setupFn func() (*config.Config, *logrus.Logger, error)) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with the PokeAPI listing and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setupFn()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				cfg.SeedLimit = limit
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			application, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer application.Close()

			saved, err := application.Seed.ExecuteSeed(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seed executed: %d pokemons\n", len(saved))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", config.DefaultSeedLimit, "Number of pokemons to import, overrides SEED_LIMIT")

	return cmd
}
