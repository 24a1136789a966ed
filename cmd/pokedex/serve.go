package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pokedex/app"
	"pokedex/config"
	"pokedex/middleware"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(setupFn func() (*config.Config, *logrus.Logger, error)) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setupFn()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			application, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer application.Close()

			middleware.UpdateSystemMetrics(ctx, log)

			server := application.Server()
			serverErr := make(chan error, 1)
			go func() {
				log.WithField("addr", server.Addr).Info("listening")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			select {
			case err := <-serverErr:
				return err
			case <-ctx.Done():
			}
			log.Info("shutting down")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("shutdown error")
			}

			log.Info("stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "Port to listen on, overrides PORT")

	return cmd
}
