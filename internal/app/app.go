package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/y4pp1/counter/internal/auth"
	"github.com/y4pp1/counter/internal/config"
	"github.com/y4pp1/counter/internal/core"
	"github.com/y4pp1/counter/internal/metrics"
	transporthttp "github.com/y4pp1/counter/internal/transport/http"
)

// App wires together the hub and the transport layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	m := metrics.New(prometheus.DefaultRegisterer)
	secret := auth.NewSecret(cfg.AdminSecret, cfg.AdminSecretHash)

	hub := core.NewHub(secret, m, logger)
	server := transporthttp.NewServer(hub, m, *cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}
}

// Run starts the hub and the HTTP server and blocks until context
// cancellation or a fatal server error. Cancellation closes every live
// session and discards the board.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
